package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nbd-wtf/go-nostr/nip19"
	"golang.org/x/term"

	"github.com/tami1A84/nostr-cli-app/internal/config"
	"github.com/tami1A84/nostr-cli-app/internal/keyvault"
	"github.com/tami1A84/nostr-cli-app/internal/nostrclient"
	"github.com/tami1A84/nostr-cli-app/internal/ui"
)

// readPassword prompts on stderr so that command output stays clean
// for pipes.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

// unlock prompts for the password and opens the key session.
func unlock() (*keyvault.Session, error) {
	pw, err := readPassword("Password: ")
	if err != nil {
		return nil, err
	}
	return keyvault.Decrypt(pw)
}

// connectedClient opens the key session, loads the relay config, and
// connects. It fails only when every relay is unreachable.
func connectedClient(ctx context.Context) (*nostrclient.Client, error) {
	session, err := unlock()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client := nostrclient.New(session, cfg.EffectiveRelays())
	statuses := client.Connect(ctx)
	ok := 0
	for _, st := range statuses {
		if st.Err != nil {
			fmt.Fprintf(os.Stderr, "relay %s: %v\n", st.URL, st.Err)
			continue
		}
		ok++
	}
	if ok == 0 {
		return nil, fmt.Errorf("no relays reachable")
	}
	return client, nil
}

func runTUI() error {
	session, err := unlock()
	if err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	client := nostrclient.New(session, cfg.EffectiveRelays())
	return ui.Run(client, session.Npub)
}

func runGenerateKeys(args []string) error {
	fs := flag.NewFlagSet("generate-keys", flag.ExitOnError)
	password := fs.String("p", "", "password protecting the new keys")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pw := *password
	if pw == "" {
		var err error
		pw, err = readPassword("New password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if pw != confirm {
			return fmt.Errorf("passwords do not match")
		}
	}

	session, err := keyvault.Generate(pw)
	if err != nil {
		return err
	}
	fmt.Println("Keys generated.")
	fmt.Println("Public key:", session.Npub)
	return nil
}

func runShowKeys() error {
	session, err := unlock()
	if err != nil {
		return err
	}
	nsec, err := session.Nsec()
	if err != nil {
		return err
	}
	fmt.Println("Public key (hex): ", session.PublicKey)
	fmt.Println("Public key (npub):", session.Npub)
	fmt.Println("Secret key (hex): ", session.SecretKey)
	fmt.Println("Secret key (nsec):", nsec)
	return nil
}

func runSend(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: nostr-cli-app send <note>")
	}
	content := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := connectedClient(ctx)
	if err != nil {
		return err
	}
	id, err := client.Publish(ctx, content)
	if err != nil {
		return err
	}
	fmt.Println("Published event", id)
	return nil
}

func runShowFeed(args []string) error {
	fs := flag.NewFlagSet("show-feed", flag.ExitOnError)
	limit := fs.Int("l", nostrclient.DefaultCollectLimit, "maximum number of notes to collect")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := connectedClient(ctx)
	if err != nil {
		return err
	}
	events, err := client.Collect(ctx, *limit,
		nostrclient.DefaultCollectBudget, nostrclient.DefaultCollectSlice)
	if err != nil {
		return err
	}

	for _, evt := range events {
		author := evt.PubKey
		if npub, err := nip19.EncodePublicKey(evt.PubKey); err == nil {
			author = npub
		}
		fmt.Printf("%s  %s\n%s\n\n",
			evt.CreatedAt.Time().Local().Format(time.RFC3339),
			author,
			evt.Content)
	}
	fmt.Printf("%d events collected\n", len(events))
	return nil
}

func runRelay(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: nostr-cli-app relay <list|add|remove> [url]")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	switch args[0] {
	case "list":
		for _, url := range cfg.EffectiveRelays() {
			fmt.Println(url)
		}
		return nil

	case "add":
		if len(args) < 2 {
			return fmt.Errorf("usage: nostr-cli-app relay add <url>")
		}
		url := args[1]
		if !strings.HasPrefix(url, "wss://") && !strings.HasPrefix(url, "ws://") {
			return fmt.Errorf("relay URL must start with wss:// or ws://")
		}
		if !cfg.Add(url) {
			return fmt.Errorf("relay %s already configured", url)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("Added", url)
		return nil

	case "remove":
		if len(args) < 2 {
			return fmt.Errorf("usage: nostr-cli-app relay remove <url>")
		}
		url := args[1]
		if !cfg.Remove(url) {
			return fmt.Errorf("relay %s not configured", url)
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Println("Removed", url)
		return nil
	}
	return fmt.Errorf("unknown relay command %q", args[0])
}
