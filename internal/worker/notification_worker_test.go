package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"portfolio-twin/internal/model"
	"portfolio-twin/internal/notify"
)

type fakeMailer struct {
	err  error
	sent []model.ContactInquiry
}

func (f *fakeMailer) Configured() bool { return f.err == nil }

func (f *fakeMailer) Send(_ context.Context, inquiry model.ContactInquiry) error {
	f.sent = append(f.sent, inquiry)
	return f.err
}

func jobBody(t *testing.T) []byte {
	t.Helper()
	name := "Ada"
	body, err := json.Marshal(model.ContactInquiry{ID: 3, Name: &name, Email: "a@b.com", Subject: "Hi", Message: "Hello"})
	require.NoError(t, err)
	return body
}

func TestHandle_SendsDecodedInquiry(t *testing.T) {
	mailer := &fakeMailer{}
	w := NewNotificationWorker(nil, mailer, "contact.notification", nil)

	require.Equal(t, outcomeAck, w.handle(context.Background(), jobBody(t)))
	require.Len(t, mailer.sent, 1)
	require.EqualValues(t, 3, mailer.sent[0].ID)
	require.Equal(t, "Ada", mailer.sent[0].DisplayName())
}

func TestHandle_DropsUndecodableJob(t *testing.T) {
	mailer := &fakeMailer{}
	w := NewNotificationWorker(nil, mailer, "q", nil)

	require.Equal(t, outcomeDrop, w.handle(context.Background(), []byte("{not json")))
	require.Empty(t, mailer.sent)
}

func TestHandle_SendFailures(t *testing.T) {
	w := NewNotificationWorker(nil, &fakeMailer{err: errors.New("421 try later")}, "q", nil)
	require.Equal(t, outcomeDrop, w.handle(context.Background(), jobBody(t)))

	w = NewNotificationWorker(nil, &fakeMailer{err: notify.ErrMailNotConfigured}, "q", nil)
	require.Equal(t, outcomeAck, w.handle(context.Background(), jobBody(t)))
}

func TestClose_WithoutStart(t *testing.T) {
	w := NewNotificationWorker(nil, &fakeMailer{}, "q", nil)
	w.Close()
}
