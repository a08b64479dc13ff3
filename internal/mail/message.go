package mail

// SMTPSettings are the connection parameters handed to the delivery function
// with every request. The zero value means "unconfigured".
type SMTPSettings struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	User   string `json:"user"`
	Pass   string `json:"pass"`
}

// Complete reports whether the settings are sufficient to attempt a send.
func (s SMTPSettings) Complete() bool {
	return s.Host != "" && s.User != "" && s.Pass != ""
}

// Message is one rendered email, ready for delivery. It is not persisted;
// only the attempt outcome is.
type Message struct {
	Recipient string
	Subject   string
	HTML      string
}
