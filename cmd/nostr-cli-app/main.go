package main

import (
	"fmt"
	"os"
)

const usage = `nostr-cli-app - a terminal Nostr client

Usage:
  nostr-cli-app                 start the interactive client
  nostr-cli-app generate-keys   generate a new key pair
  nostr-cli-app show-keys       print the stored keys
  nostr-cli-app send <note>     publish a text note
  nostr-cli-app show-feed [-l n]  print recent notes and exit
  nostr-cli-app relay list      print configured relays
  nostr-cli-app relay add <url>    add a relay
  nostr-cli-app relay remove <url> remove a relay
`

func main() {
	args := os.Args[1:]
	cmd := "tui"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "tui":
		err = runTUI()
	case "generate-keys":
		err = runGenerateKeys(args)
	case "show-keys":
		err = runShowKeys()
	case "send":
		err = runSend(args)
	case "show-feed":
		err = runShowFeed(args)
	case "relay":
		err = runRelay(args)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
