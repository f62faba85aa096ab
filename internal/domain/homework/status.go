// internal/domain/homework/status.go
package homework

import "fmt"

// Status is the review state reported by the API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// verdicts maps every documented status to its chat text. Read-only after init.
var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// NoUpdateMessage is sent when the API reports no new homework activity.
const NoUpdateMessage = "Статус работы не изменился"

// Verdict returns the human-readable verdict for s.
func Verdict(s Status) (string, bool) {
	v, ok := verdicts[s]
	return v, ok
}

// Translate builds the status-change message for a homework.
// Statuses outside the documented set fail with an UnknownStatus error.
func Translate(name string, status Status) (string, error) {
	verdict, ok := Verdict(status)
	if !ok {
		return "", &Error{Kind: KindUnknownStatus, Value: string(status)}
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
