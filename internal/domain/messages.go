package domain

// Client-facing messages. Validation messages are specific; delivery failures stay generic.
const (
	MsgContactIncomplete     = "Preencha todos os campos."
	MsgApplicationIncomplete = "Preencha todos os campos e envie o currículo."
	MsgSendFailed            = "Erro ao enviar o email."
	MsgContactSent           = "Mensagem enviada com sucesso!"
	MsgApplicationSent       = "Currículo enviado com sucesso!"
	MsgTooManyRequests       = "Muitas requisições. Tente novamente mais tarde."
)
