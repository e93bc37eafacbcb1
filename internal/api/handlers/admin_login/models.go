package admin_login

import "net/url"

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// FromForm заполняет модель из полей формы входа
func (r *LoginRequest) FromForm(values url.Values) {
	r.Username = values.Get("username")
	r.Password = values.Get("password")
}
