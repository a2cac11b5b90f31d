// internal/domain/homework/homework.go
package homework

import "fmt"

// Status is the review state reported by the endpoint for a submission.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Wire keys of a homework record.
const (
	KeyName   = "homework_name"
	KeyStatus = "status"
)

var verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Verdict returns the human phrase for s. ok is false for unknown statuses.
func (s Status) Verdict() (verdict string, ok bool) {
	verdict, ok = verdicts[s]
	return verdict, ok
}

// Homework is one submission as reported by the review endpoint.
type Homework struct {
	Name   string
	Status Status
}

// Message renders the notification text for h.
// The status must already be known to Verdict.
func (h Homework) Message() string {
	verdict, _ := h.Status.Verdict()
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", h.Name, verdict)
}

// Decode extracts a Homework from one element of the "homeworks" array.
func Decode(raw map[string]any) (Homework, error) {
	name, ok := raw[KeyName].(string)
	if !ok {
		return Homework{}, fmt.Errorf("%w: %s", ErrMissingField, KeyName)
	}
	status, ok := raw[KeyStatus].(string)
	if !ok {
		return Homework{}, fmt.Errorf("%w: %s", ErrMissingField, KeyStatus)
	}

	hw := Homework{Name: name, Status: Status(status)}
	if _, known := hw.Status.Verdict(); !known {
		return Homework{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return hw, nil
}

// ParseStatus turns a raw homework record into the notification sentence.
func ParseStatus(raw map[string]any) (string, error) {
	hw, err := Decode(raw)
	if err != nil {
		return "", err
	}
	return hw.Message(), nil
}
