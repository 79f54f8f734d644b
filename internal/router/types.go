package router

// Intent is the classified purpose of an inbound text message.
type Intent string

const (
	IntentStart           Intent = "START"
	IntentSubmitRequest   Intent = "SUBMIT_REQUEST"
	IntentDiagnosticsInfo Intent = "DIAGNOSTICS_INFO"
	IntentSupport         Intent = "SUPPORT"
	IntentBackToMenu      Intent = "BACK_TO_MENU"
	IntentForwardToAdmin  Intent = "FORWARD_TO_ADMIN"
)

// rule maps a match predicate over lowered text to an intent.
type rule struct {
	intent Intent
	match  func(lowered string) bool
}
