package backend

// Category is the two-valued classification assigned by the backend.
type Category string

const (
	CategoryProductive   Category = "Produtivo"
	CategoryUnproductive Category = "Improdutivo"
)

// Record is a persisted classification: the classified email, its
// category and confidence, and the suggested reply. The backend owns it;
// this layer only renders what it returns.
type Record struct {
	ID                int      `json:"id"`
	Category          Category `json:"category"`
	Confidence        float64  `json:"confidence"`
	SuggestedResponse string   `json:"suggested_response"`
	EmailContent      string   `json:"email_content"`
}

// InboxResult is the outcome of a bulk inbox classification.
type InboxResult struct {
	Message       string   `json:"message"`
	Classificados []Record `json:"classificados"`
}

// StatusResponse covers endpoints that only report an outcome message.
type StatusResponse struct {
	Message string `json:"message"`
}

// ResetPasswordResult carries the account email back after a successful
// password reset so the login form can be prefilled.
type ResetPasswordResult struct {
	Email string `json:"email"`
}

type updateReplyRequest struct {
	SuggestedResponse string `json:"suggested_response"`
}

type editReplyRequest struct {
	NovaResposta string `json:"nova_resposta"`
}

type sendEmailRequest struct {
	To         string `json:"to"`
	Subject    string `json:"subject"`
	ResponseID int    `json:"response_id"`
}

type loginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type registerRequest struct {
	Email        string `json:"email"`
	Senha        string `json:"senha"`
	SMTPPassword string `json:"smtp_password"`
}

type recoverPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token              string `json:"token"`
	NovaSenha          string `json:"nova_senha"`
	ConfirmarNovaSenha string `json:"confirmar_nova_senha"`
}

type classifyInboxRequest struct {
	Quantidade int `json:"quantidade"`
}
