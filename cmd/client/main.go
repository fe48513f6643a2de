// Command client is a one-shot admin CLI for the customer-management API.
//
// Usage:
//
//	client -server http://localhost:8080 -username admin -password secret list
//	client ... get <id>
//	client ... add <name> <email>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/customer-management/internal/adapter"
)

func main() {
	var serverURL string
	var username string
	var password string
	var timeout time.Duration

	flag.StringVar(&serverURL, "server", "http://localhost:8080", "API base URL")
	flag.StringVar(&username, "username", "", "Admin username")
	flag.StringVar(&password, "password", "", "Admin password")
	flag.DurationVar(&timeout, "timeout", 15*time.Second, "Request timeout")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "expected a command: list | get <id> | add <name> <email>")
		os.Exit(2)
	}

	client := adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{
		BaseURL: serverURL,
		Timeout: timeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.Login(ctx, username, password); err != nil {
		fmt.Fprintf(os.Stderr, "login failed: %v\n", err)
		os.Exit(1)
	}

	if err := runCommand(ctx, client, args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, client adapter.APIClient, args []string) error {
	switch args[0] {
	case "list":
		customers, err := client.GetCustomers(ctx)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}
		if len(customers) == 0 {
			fmt.Println("no customers")
			return nil
		}
		for _, customer := range customers {
			fmt.Printf("%s\t%s\t%s\n", customer.ID, customer.Name, customer.Email)
		}
		return nil

	case "get":
		if len(args) != 2 {
			return fmt.Errorf("usage: get <id>")
		}
		customer, err := client.GetCustomer(ctx, args[1])
		if err != nil {
			return fmt.Errorf("get failed: %w", err)
		}
		fmt.Printf("%s\t%s\t%s\n", customer.ID, customer.Name, customer.Email)
		return nil

	case "add":
		if len(args) != 3 {
			return fmt.Errorf("usage: add <name> <email>")
		}
		customer, err := client.AddCustomer(ctx, args[1], args[2])
		if err != nil {
			return fmt.Errorf("add failed: %w", err)
		}
		fmt.Printf("created %s\n", customer.ID)
		return nil

	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}
