// Command aprcv is a terminal front end for the APR-CV physical therapy
// platform: authentication, treatment plans, exercise progress,
// appointments, therapist chat and video submissions.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/RandomSci/CapstoneProject/internal/api"
	"github.com/RandomSci/CapstoneProject/internal/prefs"
	"github.com/RandomSci/CapstoneProject/internal/session"
	"github.com/RandomSci/CapstoneProject/internal/transport"
	"github.com/RandomSci/CapstoneProject/pkg/config"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
)

const usage = `Usage: aprcv <command> [flags]

Commands:
  login         Authenticate and persist the session
  logout        End the session and clear the stored credential
  whoami        Show the authenticated account
  plans         List treatment plans and their exercises
  exercise      Show one exercise with plan instances and history
  complete      Mark a plan exercise completed or not
  progress      Log a completed exercise session
  therapists    List available therapists
  book          Book an appointment
  appointments  List appointments
  chat          Send a message to a therapist and show the thread
  upload        Submit an exercise video
  submissions   List video submissions

Environment: APRCV_SERVER overrides the API base URL.`

// app bundles what every subcommand needs
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	client *api.Client
	store  *session.PrefsStore
	ctx    context.Context
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}
	command := os.Args[1]
	args := os.Args[2:]

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLogger := logger.New(cfg.LogLevel)

	prefStore, err := prefs.Open(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open local storage: %v", err)
	}
	defer prefStore.Close()

	sessions := session.NewPrefsStore(prefStore, appLogger)
	jar := transport.NewSessionJar(sessions, appLogger)
	client, err := api.New(cfg, jar, appLogger)
	if err != nil {
		log.Fatalf("Failed to build API client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Hour)
	defer cancel()

	a := &app{cfg: cfg, log: appLogger, client: client, store: sessions, ctx: ctx}

	if err := a.run(command, args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "login":
		return a.cmdLogin(args)
	case "logout":
		return a.cmdLogout()
	case "whoami":
		return a.cmdWhoami()
	case "plans":
		return a.cmdPlans()
	case "exercise":
		return a.cmdExercise(args)
	case "complete":
		return a.cmdComplete(args)
	case "progress":
		return a.cmdProgress(args)
	case "therapists":
		return a.cmdTherapists()
	case "book":
		return a.cmdBook(args)
	case "appointments":
		return a.cmdAppointments()
	case "chat":
		return a.cmdChat(args)
	case "upload":
		return a.cmdUpload(args)
	case "submissions":
		return a.cmdSubmissions()
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
