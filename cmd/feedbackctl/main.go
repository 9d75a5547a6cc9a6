package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/profenger/feedback-hub/internal/client"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Global flags
	apiURL := "http://localhost:3001"
	if envURL := os.Getenv("API_URL"); envURL != "" {
		apiURL = envURL
	}

	sessions, err := client.NewSessionStore()
	if err != nil {
		log.Fatalf("failed to locate session file: %v", err)
	}
	c := client.New(apiURL, sessions)

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "login":
		loginCmd(c, args)
	case "whoami":
		whoamiCmd(c)
	case "feedback":
		feedbackCmd(c)
	case "prompts":
		promptsCmd(c)
	case "users":
		usersCmd(c)
	case "create-user":
		createUserCmd(c, args)
	case "logout":
		logoutCmd(c)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func loginCmd(c *client.Client, args []string) {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		fmt.Println("login requires --email and --password")
		os.Exit(1)
	}

	session, err := c.Login(*email, *password)
	if err != nil {
		log.Fatalf("login failed: %v", err)
	}
	fmt.Printf("Signed in as %s (%s)\n", session.Email, session.Role)
}

func whoamiCmd(c *client.Client) {
	session := c.Current()
	if session == nil {
		fmt.Println("Not signed in")
		return
	}
	fmt.Printf("%s (%s)\n", session.Email, session.Role)
}

func feedbackCmd(c *client.Client) {
	submissions, err := c.ListFeedback()
	if err != nil {
		exitOnAPIError(err)
	}
	fmt.Printf("%d feedback submissions\n", len(submissions))
	for _, s := range submissions {
		overall := "-"
		if s.OverallRating != nil {
			overall = fmt.Sprintf("%d/5", *s.OverallRating)
		}
		fmt.Printf("  %s  %-24s overall %-4s %s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Name, overall, s.Phone)
	}
}

func promptsCmd(c *client.Client) {
	submissions, err := c.ListPrompts()
	if err != nil {
		exitOnAPIError(err)
	}
	fmt.Printf("%d prompt submissions\n", len(submissions))
	for _, s := range submissions {
		fmt.Printf("  %s  %-24s %s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Name, s.Prompt)
	}
}

func usersCmd(c *client.Client) {
	users, err := c.ListUsers()
	if err != nil {
		exitOnAPIError(err)
	}
	for _, u := range users {
		fmt.Printf("  %-32s %-12s created %s\n", u.Email, u.Role, u.CreatedAt.Format("2006-01-02"))
	}
}

func createUserCmd(c *client.Client, args []string) {
	fs := flag.NewFlagSet("create-user", flag.ExitOnError)
	email := fs.String("email", "", "new account email")
	password := fs.String("password", "", "new account password")
	fs.Parse(args)

	if *email == "" || *password == "" {
		fmt.Println("create-user requires --email and --password")
		os.Exit(1)
	}

	id, err := c.CreateUser(*email, *password)
	if err != nil {
		exitOnAPIError(err)
	}
	fmt.Printf("Created admin %s (%s)\n", *email, id)
}

func logoutCmd(c *client.Client) {
	if err := c.Logout(); err != nil {
		log.Fatalf("logout failed: %v", err)
	}
	fmt.Println("Signed out")
}

func exitOnAPIError(err error) {
	if errors.Is(err, client.ErrUnauthorized) {
		fmt.Println("Session expired or not signed in; run `feedbackctl login` again")
		os.Exit(1)
	}
	log.Fatalf("request failed: %v", err)
}

func printUsage() {
	fmt.Println(`feedbackctl - Admin CLI for the feedback hub

USAGE:
  feedbackctl <command> [options]

COMMANDS:
  login        Sign in and store the session locally (--email, --password)
  whoami       Show the cached session identity
  feedback     List feedback submissions (newest first)
  prompts      List prompt submissions (newest first)
  users        List accounts (superAdmin only)
  create-user  Create an admin account (superAdmin only; --email, --password)
  logout       Clear the cached session
  help         Show this help message

ENVIRONMENT:
  API_URL   Backend API URL (default: http://localhost:3001)`)
}
