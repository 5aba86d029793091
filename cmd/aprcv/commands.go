package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/RandomSci/CapstoneProject/internal/api"
	"github.com/RandomSci/CapstoneProject/internal/chat"
	"github.com/RandomSci/CapstoneProject/internal/media"
	"github.com/RandomSci/CapstoneProject/internal/state"
	"github.com/RandomSci/CapstoneProject/internal/upload"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

func (a *app) cmdLogin(args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("user", "", "Username")
	remember := fs.Bool("remember", true, "Persist the session")
	fs.Parse(args)

	if *username == "" {
		return fmt.Errorf("--user is required")
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	status, err := a.client.Login(a.ctx, &types.LoginRequest{
		Username:   *username,
		Password:   string(password),
		RememberMe: *remember,
	})
	if err != nil {
		return err
	}
	if !status.OK() {
		return fmt.Errorf("login rejected: %s", status.Message)
	}
	if err := a.rememberUser(); err != nil {
		a.log.WithComponent("cli").WithError(err).Warn("Could not resolve the patient profile; user id left unset")
	}
	fmt.Println("Logged in as", *username)
	return nil
}

// rememberUser persists the patient's user id next to the session token so
// later runs can attribute locally authored chat messages without another
// profile fetch
func (a *app) rememberUser() error {
	profile, err := a.client.UserPatientProfile(a.ctx)
	if err != nil {
		return err
	}
	return a.store.SaveUserID(profile.UserID)
}

func (a *app) cmdLogout() error {
	// The credential is cleared even when the server call fails
	if _, err := a.client.Logout(a.ctx); err != nil {
		a.log.WithComponent("cli").WithError(err).Warn("Logout request failed; local session cleared")
	}
	if err := a.store.ClearUserID(); err != nil {
		a.log.WithComponent("cli").WithError(err).Warn("Failed to clear the stored user id")
	}
	fmt.Println("Logged out")
	return nil
}

func (a *app) cmdWhoami() error {
	info, err := a.client.UserInfo(a.ctx)
	if err != nil {
		if types.IsAuthenticationError(err) {
			fmt.Println("Not logged in")
			return nil
		}
		return err
	}
	fmt.Printf("%s <%s>, joined %s\n", info.Username, info.Email, info.Joined)
	return nil
}

func (a *app) cmdPlans() error {
	res := a.fetchPlans()
	switch {
	case res.IsError():
		return fmt.Errorf("%s", res.Message)
	case res.IsLoading():
		return fmt.Errorf("plans still loading")
	}

	if len(res.Data) == 0 {
		fmt.Println("No treatment plans")
		return nil
	}
	for _, plan := range res.Data {
		fmt.Printf("[%d] %s (%s) — %s, %.0f%% complete\n",
			plan.PlanID, plan.Name, plan.Status, plan.TherapistName, plan.Progress)
		for _, ex := range plan.Exercises {
			mark := " "
			if ex.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] #%d %s — %d sets x %d reps, %s\n",
				mark, ex.PlanExerciseID, ex.Name, ex.Sets, ex.Repetitions, ex.Frequency)
		}
	}
	return nil
}

// fetchPlans wraps the plan list in a render-state resource
func (a *app) fetchPlans() types.Resource[[]types.TreatmentPlan] {
	plans, err := a.client.UserTreatmentPlans(a.ctx)
	if err != nil {
		return types.ErrorResource[[]types.TreatmentPlan](err.Error())
	}
	return types.SuccessResource(plans)
}

func (a *app) cmdExercise(args []string) error {
	fs := flag.NewFlagSet("exercise", flag.ExitOnError)
	id := fs.Int("id", 0, "Exercise id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	details, err := a.client.ExerciseDetails(a.ctx, *id)
	if err != nil {
		return err
	}

	fmt.Printf("%s (%s)\n%s\n", details.Name, details.Difficulty, details.Description)
	if details.VideoURL != nil {
		if videoID := media.ExtractYouTubeID(*details.VideoURL); videoID != "" {
			fmt.Println("Video: https://youtu.be/" + videoID)
		} else {
			fmt.Println("Video:", a.client.FullMediaURL(*details.VideoURL))
		}
	}
	for _, inst := range details.PlanInstances {
		fmt.Printf("  plan %q (#%d): %d sets x %d reps, %s, completed=%v\n",
			inst.PlanName, inst.PlanExerciseID, inst.Sets, inst.Repetitions,
			inst.Frequency, inst.Completed)
	}
	return nil
}

func (a *app) cmdComplete(args []string) error {
	fs := flag.NewFlagSet("complete", flag.ExitOnError)
	id := fs.Int("id", 0, "Plan exercise id")
	undo := fs.Bool("undo", false, "Mark as not completed")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	status, err := a.client.UpdateExerciseStatus(a.ctx, *id, !*undo)
	if err != nil {
		return err
	}
	if !status.OK() {
		return fmt.Errorf("update rejected: %s", status.Message)
	}
	fmt.Printf("Exercise %d completed=%v\n", *id, !*undo)
	return nil
}

func (a *app) cmdProgress(args []string) error {
	fs := flag.NewFlagSet("progress", flag.ExitOnError)
	id := fs.Int("id", 0, "Plan exercise id")
	sets := fs.Int("sets", 1, "Sets completed")
	reps := fs.Int("reps", -1, "Repetitions completed")
	pain := fs.Int("pain", -1, "Pain level 0-10")
	difficulty := fs.Int("difficulty", -1, "Difficulty level 0-10")
	notes := fs.String("notes", "", "Session notes")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("--id is required")
	}

	req := &types.AddProgressRequest{SetsCompleted: *sets}
	if *reps >= 0 {
		req.RepetitionsCompleted = reps
	}
	if *pain >= 0 {
		req.PainLevel = pain
	}
	if *difficulty >= 0 {
		req.DifficultyLevel = difficulty
	}
	if *notes != "" {
		req.Notes = notes
	}

	resp, err := a.client.AddExerciseProgress(a.ctx, *id, req)
	if err != nil {
		return err
	}
	fmt.Println(resp.Detail)
	return nil
}

func (a *app) cmdTherapists() error {
	therapists, err := a.client.Therapists(a.ctx)
	if err != nil {
		return err
	}
	if len(therapists) == 0 {
		fmt.Println("No therapists available")
		return nil
	}
	for _, t := range therapists {
		fmt.Printf("[%d] %s — %s (%.1f★, %d reviews)\n",
			t.ID, t.Name, strings.Join(t.Specialties, ", "), t.Rating, t.ReviewCount)
	}
	return nil
}

func (a *app) cmdBook(args []string) error {
	fs := flag.NewFlagSet("book", flag.ExitOnError)
	therapistID := fs.Int("therapist", 0, "Therapist id")
	date := fs.String("date", "", "Date (YYYY-MM-DD)")
	at := fs.String("time", "", "Time (HH:MM)")
	kind := fs.String("type", types.AppointmentTypeVideo, "video|phone|in-person")
	notes := fs.String("notes", "", "Notes for the therapist")
	fs.Parse(args)

	req := &types.AppointmentRequest{
		TherapistID: *therapistID,
		Date:        *date,
		Time:        *at,
		Type:        *kind,
	}
	if *notes != "" {
		req.Notes = notes
	}

	resp, err := a.client.BookAppointment(a.ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(resp.Message)
	return nil
}

func (a *app) cmdAppointments() error {
	appointments, err := a.client.UserAppointments(a.ctx)
	if err != nil {
		return err
	}
	if len(appointments) == 0 {
		fmt.Println("No appointments")
		return nil
	}
	for _, appt := range appointments {
		fmt.Printf("[%d] %s %s — therapist %d, %s (%s)\n",
			appt.AppointmentID, appt.AppointmentDate, appt.AppointmentTime,
			appt.TherapistID, appt.AppointmentType, appt.Status)
	}

	if next, err := a.client.UserNextAppointment(a.ctx); err == nil && next != nil {
		fmt.Printf("Next: %s %s\n", next.AppointmentDate, next.AppointmentTime)
	}
	return nil
}

func (a *app) cmdChat(args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	therapistID := fs.Int("therapist", 0, "Therapist id")
	message := fs.String("send", "", "Message to send; omit to just read the thread")
	follow := fs.Bool("follow", false, "Keep polling the thread for new messages")
	fs.Parse(args)
	if *therapistID == 0 {
		return fmt.Errorf("--therapist is required")
	}

	conversation := chat.NewConversation(a.client, a.log, *therapistID, a.userID())
	if err := conversation.Refresh(a.ctx); err != nil {
		return err
	}

	if *message != "" {
		if err := conversation.Send(a.ctx, *message); err != nil {
			// The failed message stays in the transcript below
			fmt.Fprintln(os.Stderr, "Send failed:", err)
		}
	}

	lastPrinted := 0
	printThread := func(messages []types.ChatMessage) {
		for _, m := range messages[lastPrinted:] {
			who := "therapist"
			if m.FromCurrentUser() {
				who = "you"
			}
			fmt.Printf("%s %-9s %s\n", media.FormatMessageTime(m.Timestamp), who, m.Content)
		}
		lastPrinted = len(messages)
	}
	printThread(conversation.Messages())

	if !*follow {
		return nil
	}

	// Poll through a freshness slot so overlapping or slow fetches cannot
	// roll the thread back to an older snapshot
	thread := state.NewSlot[[]types.ChatMessage]()
	for {
		select {
		case <-a.ctx.Done():
			return nil
		case <-time.After(time.Second):
		}

		messages, err := thread.Get(a.ctx, 5*time.Second, func(ctx context.Context) ([]types.ChatMessage, error) {
			return a.client.TherapistMessages(ctx, *therapistID)
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "Refresh failed:", err)
			continue
		}
		if len(messages) > lastPrinted {
			printThread(messages)
		}
	}
}

func (a *app) cmdUpload(args []string) error {
	fs := flag.NewFlagSet("upload", flag.ExitOnError)
	exerciseID := fs.Int("exercise", 0, "Exercise id")
	planID := fs.Int("plan", 0, "Treatment plan id")
	file := fs.String("file", "", "Video file path")
	notes := fs.String("notes", "", "Submission notes")
	fs.Parse(args)
	if *exerciseID == 0 || *planID == 0 || *file == "" {
		return fmt.Errorf("--exercise, --plan and --file are required")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	resp, err := a.client.UploadExerciseVideo(a.ctx, &api.UploadVideoParams{
		ExerciseID: *exerciseID,
		PlanID:     *planID,
		Notes:      *notes,
		Video:      upload.NewFileSource(*file, "video/mp4"),
		OnProgress: func(fraction float64) {
			if fraction == upload.IndeterminateProgress {
				fmt.Fprint(out, "\rUploading...")
			} else {
				fmt.Fprintf(out, "\rUploading: %3.0f%%", fraction*100)
			}
			out.Flush()
		},
	})
	fmt.Fprintln(out)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Submission %d accepted: %s\n", resp.SubmissionID, resp.Message)
	return nil
}

func (a *app) cmdSubmissions() error {
	submissions, err := a.client.UserVideoSubmissions(a.ctx)
	if err != nil {
		return err
	}
	if len(submissions) == 0 {
		fmt.Println("No video submissions")
		return nil
	}
	for _, sub := range submissions {
		feedback := ""
		if sub.HasFeedback.Bool() {
			feedback = " [feedback available]"
		}
		fmt.Printf("[%d] %s — %s, %s%s\n",
			sub.SubmissionID, sub.ExerciseName,
			media.FormatSubmissionDate(sub.SubmissionDate), sub.Status, feedback)
	}
	return nil
}

// userID resolves the locally stored patient user id, zero when absent
func (a *app) userID() int {
	id := a.store.UserID()
	if id == "" {
		return 0
	}
	var n int
	fmt.Sscanf(id, "%d", &n)
	return n
}
