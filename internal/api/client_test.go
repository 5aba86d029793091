package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RandomSci/CapstoneProject/internal/stubserver"
	"github.com/RandomSci/CapstoneProject/internal/transport"
	"github.com/RandomSci/CapstoneProject/internal/upload"
	"github.com/RandomSci/CapstoneProject/pkg/config"
	"github.com/RandomSci/CapstoneProject/pkg/logger"
	"github.com/RandomSci/CapstoneProject/pkg/types"
)

// memorySessions is an in-memory session.Store for client tests
type memorySessions struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (m *memorySessions) Save(host, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokens[host] = token
	return nil
}

func (m *memorySessions) Load(host string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens[host], nil
}

func (m *memorySessions) Clear(host string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tokens, host)
	return nil
}

// newTestClient spins up the stub backend and a client pointed at it
func newTestClient(t *testing.T) *Client {
	t.Helper()

	server := httptest.NewServer(stubserver.New(logger.Discard()))
	t.Cleanup(server.Close)

	cfg := config.Default()
	cfg.API.BaseURL = server.URL + "/"

	jar := transport.NewSessionJar(&memorySessions{tokens: map[string]string{}}, logger.Discard())
	client, err := New(cfg, jar, logger.Discard())
	require.NoError(t, err)
	return client
}

func login(t *testing.T, client *Client) {
	t.Helper()
	status, err := client.Login(context.Background(), &types.LoginRequest{
		Username: "patient1",
		Password: "secret123",
	})
	require.NoError(t, err)
	require.True(t, status.OK())
}

func TestClient_LoginCapturesSession(t *testing.T) {
	client := newTestClient(t)

	assert.Empty(t, client.Jar().Session(client.Host()))
	login(t, client)
	assert.NotEmpty(t, client.Jar().Session(client.Host()),
		"login response cookie becomes the current credential")
}

func TestClient_LoginRejected(t *testing.T) {
	client := newTestClient(t)

	_, err := client.Login(context.Background(), &types.LoginRequest{
		Username: "patient1",
		Password: "wrong-password",
	})

	require.Error(t, err)
	assert.True(t, types.IsAuthenticationError(err))
	assert.Empty(t, client.Jar().Session(client.Host()))
}

func TestClient_UnauthenticatedRequest(t *testing.T) {
	client := newTestClient(t)

	_, err := client.UserTreatmentPlans(context.Background())

	require.Error(t, err)
	assert.True(t, types.IsAuthenticationError(err))
}

func TestClient_TreatmentPlansAfterLogin(t *testing.T) {
	client := newTestClient(t)
	login(t, client)

	plans, err := client.UserTreatmentPlans(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	assert.Equal(t, "Knee Rehabilitation", plans[0].Name)
	require.Len(t, plans[0].Exercises, 2)
}

func TestClient_UpdateExerciseStatusRoundTrips(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	plans, err := client.UserTreatmentPlans(ctx)
	require.NoError(t, err)
	target := plans[0].Exercises[1]
	require.False(t, target.Completed)

	status, err := client.UpdateExerciseStatus(ctx, target.PlanExerciseID, true)
	require.NoError(t, err)
	assert.True(t, status.OK())

	refreshed, err := client.UserTreatmentPlans(ctx)
	require.NoError(t, err)
	for _, ex := range refreshed[0].Exercises {
		if ex.PlanExerciseID == target.PlanExerciseID {
			assert.True(t, ex.Completed, "completed must reflect the confirmed state")
		}
	}
}

func TestClient_AddProgressValidation(t *testing.T) {
	client := newTestClient(t)
	login(t, client)

	bad := 11
	_, err := client.AddExerciseProgress(context.Background(), 201, &types.AddProgressRequest{
		SetsCompleted: 3,
		PainLevel:     &bad,
	})

	require.Error(t, err, "pain level above 10 is rejected before the wire call")
	var ce *types.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, types.ErrorKindValidation, ce.Kind)
}

func TestClient_AddProgressBoundaries(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	for _, level := range []int{0, 10} {
		level := level
		resp, err := client.AddExerciseProgress(ctx, 201, &types.AddProgressRequest{
			SetsCompleted: 1,
			PainLevel:     &level,
		})
		require.NoError(t, err, "pain level %d is within the inclusive scale", level)
		assert.NotZero(t, resp.ProgressID)
	}
}

func TestClient_NotFoundDetail(t *testing.T) {
	client := newTestClient(t)
	login(t, client)

	_, err := client.ExerciseDetails(context.Background(), 999999)

	require.Error(t, err)
	var ce *types.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, types.ErrorKindNotFound, ce.Kind)
	assert.Equal(t, 404, ce.StatusCode)
	assert.Equal(t, "Exercise not found", ce.Message, "server detail is surfaced")
}

func TestClient_ConnectivityError(t *testing.T) {
	server := httptest.NewServer(stubserver.New(logger.Discard()))
	cfg := config.Default()
	cfg.API.BaseURL = server.URL + "/"
	jar := transport.NewSessionJar(&memorySessions{tokens: map[string]string{}}, logger.Discard())
	client, err := New(cfg, jar, logger.Discard())
	require.NoError(t, err)

	server.Close()

	_, err = client.ServerStatus(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsConnectivityError(err))
}

func TestClient_LogoutClearsSessionEvenOnFailure(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	require.NotEmpty(t, client.Jar().Session(client.Host()))

	_, err := client.Logout(context.Background())
	require.NoError(t, err)
	assert.Empty(t, client.Jar().Session(client.Host()))

	// A second logout fails server-side (401) but still clears locally
	client.Jar().SetSession(client.Host(), "stale-token")
	_, err = client.Logout(context.Background())
	require.Error(t, err)
	assert.Empty(t, client.Jar().Session(client.Host()))
}

func TestClient_NextAppointmentAbsent(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	// Seeded fixture has one appointment
	next, err := client.UserNextAppointment(ctx)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.NotZero(t, next.AppointmentID)
}

func TestClient_MessagingRoundTrip(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	resp, err := client.SendMessageToTherapist(ctx, &types.SendMessageRequest{
		TherapistID: 7,
		Content:     "Booked my next session.",
	})
	require.NoError(t, err)
	assert.True(t, resp.Accepted())

	messages, err := client.TherapistMessages(ctx, 7)
	require.NoError(t, err)

	var found bool
	for _, m := range messages {
		if m.ID == resp.ID {
			found = true
			assert.Equal(t, "Booked my next session.", m.Content)
		}
	}
	assert.True(t, found, "sent message appears in the server thread")
}

func TestClient_UploadExerciseVideo(t *testing.T) {
	client := newTestClient(t)
	login(t, client)

	var progress []float64
	resp, err := client.UploadExerciseVideo(context.Background(), &UploadVideoParams{
		ExerciseID: 101,
		PlanID:     11,
		Notes:      "full range of motion",
		Video:      &stringSource{data: strings.Repeat("f", 256*1024), contentType: "video/mp4"},
		OnProgress: func(fraction float64) {
			progress = append(progress, fraction)
		},
	})

	require.NoError(t, err)
	assert.NotZero(t, resp.SubmissionID)

	require.NotEmpty(t, progress)
	assert.Equal(t, 1.0, progress[len(progress)-1])

	// The accepted submission is visible in the list
	subs, err := client.UserVideoSubmissions(context.Background())
	require.NoError(t, err)
	var found bool
	for _, sub := range subs {
		if sub.SubmissionID == resp.SubmissionID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestClient_DeleteVideoSubmission(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	status, err := client.DeleteVideoSubmission(ctx, 701)
	require.NoError(t, err)
	assert.True(t, status.OK())

	_, err = client.VideoSubmissionDetails(ctx, 701)
	require.Error(t, err)
	var ce *types.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, types.ErrorKindNotFound, ce.Kind)
}

func TestClient_AddPatientRoundTrips(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	status, err := client.AddPatient(ctx, 8)
	require.NoError(t, err)
	assert.True(t, status.OK())

	matched, err := client.UserTherapist(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, matched.ID, "the match is visible on the assigned-therapist endpoint")
}

func TestClient_AddPatientUnknownTherapist(t *testing.T) {
	client := newTestClient(t)
	login(t, client)

	_, err := client.AddPatient(context.Background(), 999999)

	require.Error(t, err)
	var ce *types.ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, types.ErrorKindNotFound, ce.Kind)
}

func TestClient_RateTherapist(t *testing.T) {
	client := newTestClient(t)
	login(t, client)
	ctx := context.Background()

	before, err := client.TherapistDetails(ctx, 8)
	require.NoError(t, err)

	comment := "Great session plans"
	status, err := client.RateTherapist(ctx, 8, &types.TherapistRatingRequest{
		Rating:  3,
		Comment: &comment,
	})
	require.NoError(t, err)
	assert.True(t, status.OK())

	after, err := client.TherapistDetails(ctx, 8)
	require.NoError(t, err)
	assert.Equal(t, before.ReviewCount+1, after.ReviewCount)
	assert.Less(t, after.Rating, before.Rating, "a below-average rating lowers the aggregate")
}

func TestClient_RateTherapistOutOfRange(t *testing.T) {
	client := newTestClient(t)
	login(t, client)

	for _, rating := range []int{0, 6} {
		_, err := client.RateTherapist(context.Background(), 8, &types.TherapistRatingRequest{Rating: rating})
		require.Error(t, err, "rating %d is outside the 1-5 scale", rating)
		var ce *types.ClientError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, types.ErrorKindValidation, ce.Kind)
	}
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, 422, statusOf(types.NewAPIError(422, "bad field")))
	assert.Equal(t, 0, statusOf(io.ErrUnexpectedEOF), "plain errors carry no wire status")
	assert.Equal(t, 0, statusOf(types.NewConnectivityError("down", io.ErrUnexpectedEOF)))
}

func TestClient_FullMediaURL(t *testing.T) {
	client := newTestClient(t)

	absolute := "https://cdn.example.com/video.mp4"
	assert.Equal(t, absolute, client.FullMediaURL(absolute))

	joined := client.FullMediaURL("media/submissions/701.mp4")
	assert.True(t, strings.HasSuffix(joined, "/media/submissions/701.mp4"))
	assert.True(t, strings.HasPrefix(joined, "http"))
}

// stringSource is an in-memory upload source
type stringSource struct {
	data        string
	contentType string
}

func (s *stringSource) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.data)), nil
}

func (s *stringSource) Size() int64         { return int64(len(s.data)) }
func (s *stringSource) ContentType() string { return s.contentType }

var _ upload.Source = (*stringSource)(nil)
var _ http.CookieJar = (*transport.SessionJar)(nil)
