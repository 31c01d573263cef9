package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freightflow"
	"freightflow/internal/api/models"
	"freightflow/internal/api/repo"

	"github.com/rs/zerolog"
	gomail "github.com/wneessen/go-mail"
)

// Dispatcher sends best-effort email notifications for job creation and
// stage completion. Events are queued on a buffered channel and drained by a
// background worker; nothing here ever fails the request that produced the
// event. With SMTP unconfigured every send is a logged no-op.
type Dispatcher struct {
	events   chan notifyEvent
	jobRepo  *repo.JobRepository
	userRepo *repo.UserRepository
	config   freightflow.AppConfig
	logger   zerolog.Logger
}

type notifyKind int

const (
	notifyJobCreated notifyKind = iota
	notifyStageCompleted
)

type notifyEvent struct {
	kind   notifyKind
	jobID  uint
	userID uint
	stage  models.Stage
}

const sendRetries = 2

func NewDispatcher() *Dispatcher {
	cfg := freightflow.GetConfig()
	size := cfg.NotifyConfig.QueueSize
	if size <= 0 {
		size = 64
	}
	return &Dispatcher{
		events:   make(chan notifyEvent, size),
		jobRepo:  repo.NewJobRepository(),
		userRepo: repo.NewUserRepository(),
		config:   cfg,
		logger:   freightflow.Logger,
	}
}

// Run drains the queue until ctx is cancelled. Start it once from main.
func (slf *Dispatcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-slf.events:
			if err := slf.dispatch(ev); err != nil {
				slf.logger.Warn().Err(err).Uint("jobId", ev.jobID).Msg("Notification not delivered")
			}
		}
	}
}

// NotifyJobCreation queues a job-creation email. Never blocks; a full queue
// drops the event with a log line.
func (slf *Dispatcher) NotifyJobCreation(jobID, userID uint) {
	slf.enqueue(notifyEvent{kind: notifyJobCreated, jobID: jobID, userID: userID})
}

// NotifyStageCompletion queues a stage-completion email.
func (slf *Dispatcher) NotifyStageCompletion(jobID uint, stage models.Stage, userID uint) {
	slf.enqueue(notifyEvent{kind: notifyStageCompleted, jobID: jobID, userID: userID, stage: stage})
}

func (slf *Dispatcher) enqueue(ev notifyEvent) {
	select {
	case slf.events <- ev:
	default:
		slf.logger.Warn().Uint("jobId", ev.jobID).Msg("Notification queue full, event dropped")
	}
}

func (slf *Dispatcher) dispatch(ev notifyEvent) error {
	job, err := slf.jobRepo.FindByID(ev.jobID)
	if err != nil {
		return fmt.Errorf("job %d lookup: %w", ev.jobID, err)
	}
	user, err := slf.userRepo.FindByID(ev.userID)
	if err != nil {
		return fmt.Errorf("user %d lookup: %w", ev.userID, err)
	}

	recipient := slf.resolveRecipient(job)

	var subject, body string
	switch ev.kind {
	case notifyJobCreated:
		subject = fmt.Sprintf("New Pipeline Job Created - %s", job.JobNo)
		body = jobCreationBody(job.JobNo, user.Username)
	case notifyStageCompleted:
		subject = fmt.Sprintf("Stage Completion Notification - Job %s", job.JobNo)
		body = stageCompletionBody(job.JobNo, ev.stage, user.Username, time.Now())
	default:
		return fmt.Errorf("unknown notification kind %d", ev.kind)
	}

	var lastErr error
	for attempt := 0; attempt < sendRetries; attempt++ {
		lastErr = slf.send(recipient, subject, body)
		if lastErr == nil {
			slf.logger.Info().Str("to", recipient).Str("subject", subject).Msg("Notification sent")
			return nil
		}
		if attempt < sendRetries-1 {
			time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
		}
	}
	return lastErr
}

// resolveRecipient walks the address priority chain: job-specific email,
// configured admin address, first admin user, configured fallback.
func (slf *Dispatcher) resolveRecipient(job models.Job) string {
	if job.NotificationEmail != "" {
		return job.NotificationEmail
	}
	if slf.config.NotifyConfig.AdminEmail != "" {
		return slf.config.NotifyConfig.AdminEmail
	}
	if email, err := slf.userRepo.FirstAdminEmail(); err == nil && email != "" {
		return email
	}
	return slf.config.NotifyConfig.FallbackEmail
}

func (slf *Dispatcher) smtpConfigured() bool {
	return slf.config.SmtpConfig.Host != "" && slf.config.SmtpConfig.Username != ""
}

func (slf *Dispatcher) send(to, subject, htmlBody string) error {
	if !slf.smtpConfigured() {
		return errors.New("SMTP not configured, notification skipped")
	}

	cfg := slf.config.SmtpConfig
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return fmt.Errorf("failed to set from: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("failed to set to: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextHTML, htmlBody)

	tlsPolicy := gomail.TLSOpportunistic
	if cfg.UseTLS {
		tlsPolicy = gomail.TLSMandatory
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(tlsPolicy),
	}
	if cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func jobCreationBody(jobNo, createdBy string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>New Pipeline Job Created</h2>
    <p>A new pipeline job has been created in the system.</p>
    <p><strong>Job Number:</strong> %s</p>
    <p><strong>Created By:</strong> %s</p>
    <p><strong>Status:</strong> %s</p>
    <p>Please review the new job and assign it to the appropriate team members.</p>
    <hr>
    <p style="font-size: 12px; color: #6b7280;">This is an automated notification from FreightFlow.</p>
  </div>
</body>
</html>`, jobNo, createdBy, models.StageOne.Label())
}

func stageCompletionBody(jobNo string, stage models.Stage, completedBy string, at time.Time) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2>Stage Completion Notification</h2>
    <p>A pipeline stage has been completed.</p>
    <p><strong>Job Number:</strong> %s</p>
    <p><strong>Completed Stage:</strong> %s</p>
    <p><strong>Completed By:</strong> %s</p>
    <p><strong>Completion Time:</strong> %s</p>
    <p><strong>Next Stage:</strong> %s</p>
    <p>Please review the completed stage and proceed with the next stage if everything is in order.</p>
    <hr>
    <p style="font-size: 12px; color: #6b7280;">This is an automated notification from FreightFlow.</p>
  </div>
</body>
</html>`, jobNo, stage.Label(), completedBy, at.Format("02 Jan 2006 15:04"), stage.NextLabel())
}
