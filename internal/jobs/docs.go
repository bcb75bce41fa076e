// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six field expressions with
// seconds) and skip a tick while the previous run is still going.
//
// # Available Jobs
//
//  1. PaymentExpiryJob closes orders still waiting for payment once the
//     payment window has passed, with reason PAYMENT_TIMEOUT.
//
// # Usage
//
//	expiry := jobs.NewPaymentExpiryJob(orderRepo, cancelHandler, jobs.PaymentExpiryConfig{
//		Schedule: "0 * * * * *",
//		Expiry:   15 * time.Minute,
//	}, logger)
//
//	jobManager := jobs.NewJobManager(logger, expiry)
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Orders that were paid or removed between the lookup and the cancellation
// are skipped quietly. Any other failure is logged and the run moves on to
// the next order.
package jobs
