package huefy

// SendHooks receives lifecycle notifications around send operations. Hooks
// are for observability only: they are invoked synchronously, must not block
// for long, and never affect control flow or the returned result.
//
// Embed NopHooks to implement only the methods you care about:
//
//	type retryLogger struct{ huefy.NopHooks }
//
//	func (retryLogger) OnRetry(attempt int, err error) {
//		log.Printf("retry %d: %v", attempt, err)
//	}
type SendHooks interface {
	// OnSendStart fires once per SendEmail call, before validation.
	OnSendStart(req *SendEmailRequest)
	// OnSendSuccess fires once when a send call returns a response.
	OnSendSuccess(req *SendEmailRequest, resp *SendEmailResponse)
	// OnSendError fires once when a send call fails, after retries are
	// exhausted or immediately for non-retryable failures.
	OnSendError(req *SendEmailRequest, err error)
	// OnRetry fires before each retry attempt with the attempt number
	// (starting at 1) and the error that triggered the retry.
	OnRetry(attempt int, err error)
}

// NopHooks implements SendHooks with no-ops.
type NopHooks struct{}

func (NopHooks) OnSendStart(*SendEmailRequest)                       {}
func (NopHooks) OnSendSuccess(*SendEmailRequest, *SendEmailResponse) {}
func (NopHooks) OnSendError(*SendEmailRequest, error)                {}
func (NopHooks) OnRetry(int, error)                                  {}
