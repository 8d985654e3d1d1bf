package notify

import (
	"context"

	"jumatrek/pkg/logger"
	"jumatrek/pkg/middleware"
	"jumatrek/pkg/model"
)

type Outcome string

const (
	OutcomeSent    Outcome = "sent"
	OutcomeQueued  Outcome = "queued"
	OutcomeSkipped Outcome = "skipped"
)

// Note is appended to the inquiry confirmation message.
func (o Outcome) Note() string {
	switch o {
	case OutcomeSent:
		return " Email notifications sent."
	case OutcomeQueued:
		return " Email notifications queued."
	default:
		return " Email notifications skipped."
	}
}

// Notifier fans an accepted inquiry out to mail and the event bus. Nothing it
// does can fail the inquiry.
type Notifier struct {
	mailer     Mailer
	dispatcher *Dispatcher
	publisher  Publisher
	adminEmail string
	log        *logger.Logger
}

// NewNotifier sends synchronously when dispatcher is nil. publisher may be nil.
func NewNotifier(mailer Mailer, dispatcher *Dispatcher, publisher Publisher, adminEmail string, log *logger.Logger) *Notifier {
	return &Notifier{
		mailer:     mailer,
		dispatcher: dispatcher,
		publisher:  publisher,
		adminEmail: adminEmail,
		log:        log,
	}
}

func (n *Notifier) InquiryCreated(ctx context.Context, inq *model.Inquiry) Outcome {
	n.publish(ctx, inq)

	if !n.mailer.Configured() {
		return OutcomeSkipped
	}

	jobs := n.jobs(inq)
	if len(jobs) == 0 {
		return OutcomeSkipped
	}

	if n.dispatcher != nil {
		accepted := 0
		for _, job := range jobs {
			if n.dispatcher.Enqueue(job) {
				accepted++
			}
		}
		if accepted > 0 {
			return OutcomeQueued
		}
		return OutcomeSkipped
	}

	delivered := false
	for _, job := range jobs {
		if n.mailer.Send(ctx, job.Subject, job.HTML, job.To) {
			delivered = true
		}
	}
	if delivered {
		return OutcomeSent
	}
	return OutcomeSkipped
}

func (n *Notifier) jobs(inq *model.Inquiry) []Job {
	var jobs []Job

	if n.adminEmail != "" {
		body, err := AdminNotification(inq)
		if err != nil {
			n.log.Error("Failed to render admin notification", "inquiry_id", inq.ID, "error", err)
		} else {
			jobs = append(jobs, Job{Subject: AdminSubject, HTML: body, To: n.adminEmail})
		}
	}

	body, err := CustomerAcknowledgement(inq)
	if err != nil {
		n.log.Error("Failed to render customer acknowledgement", "inquiry_id", inq.ID, "error", err)
	} else {
		jobs = append(jobs, Job{Subject: CustomerSubject, HTML: body, To: inq.Email})
	}

	return jobs
}

func (n *Notifier) publish(ctx context.Context, inq *model.Inquiry) {
	if n.publisher == nil {
		return
	}

	msg, err := newInquiryCreatedMessage(inq, middleware.RequestIDFromContext(ctx))
	if err != nil {
		n.log.Error("Failed to build inquiry event", "inquiry_id", inq.ID, "error", err)
		return
	}
	if err := n.publisher.Publish(ctx, msg); err != nil {
		n.log.Warn("Failed to publish inquiry event", "inquiry_id", inq.ID, "error", err)
	}
}
