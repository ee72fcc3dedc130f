// scripts/gcal-auth/main.go
//
// Run this ONCE locally to authorize Google Calendar reminders and generate
// the token file read by the API.
//
// Usage:
//   go run scripts/gcal-auth/main.go [credentials.json] [token.json]

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"voice-todo/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := gcalendar.DefaultTokenPath
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	auth, err := gcalendar.NewAuthorizer(data)
	if err != nil {
		log.Fatalf("%v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	fmt.Println("=================================================================")
	fmt.Println("STEP 1: Open this URL in a browser and sign in:")
	fmt.Println()
	fmt.Println(auth.AuthURL("state-token"))
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: Paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := auth.Exchange(context.Background(), code)
	if err != nil {
		log.Fatal(err)
	}
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Set google_calendar.token_path to it and restart the API to enable calendar reminders.")
}
