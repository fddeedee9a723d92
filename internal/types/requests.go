package types

import "github.com/go-playground/validator/v10"

// LoadResumeRequest carries an uploaded resume document into the session
// boundary. Data may be PDF, HTML, or plain text bytes.
type LoadResumeRequest struct {
	Filename string `json:"filename" validate:"required"`
	Data     []byte `json:"data"`
}

// Validate validates the LoadResumeRequest using the validator.
func (r *LoadResumeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// SubmitJobRequest carries a job description into the session boundary.
type SubmitJobRequest struct {
	Text string `json:"text" validate:"required"`
}

// Validate validates the SubmitJobRequest using the validator.
func (r *SubmitJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// AnswerRequest carries a yes/no response to a reword or confirm prompt.
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required,oneof=yes no"`
}

// Validate validates the AnswerRequest using the validator.
func (r *AnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Yes reports whether the answer is affirmative.
func (r *AnswerRequest) Yes() bool {
	return r.Answer == "yes"
}
