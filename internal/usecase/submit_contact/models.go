package submit_contact

// Request модель запроса формы обратной связи (сырые поля формы)
type Request struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string

	SourceAddr string
}

// Response модель ответа с сохраненным сообщением
type Response struct {
	ID int64
}
