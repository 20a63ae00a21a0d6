package models

// UsuarioLogin es el usuario autenticado en la primera fase.
type UsuarioLogin struct {
	ID    FlexInt `json:"id"`
	Login string  `json:"login"`
}

// ClienteLogin es un condominio disponible para el usuario.
type ClienteLogin struct {
	ID          FlexInt `json:"id"`
	RazonSocial string  `json:"razonSocial"`
}

// LoginResultado es la respuesta de POST /login.
type LoginResultado struct {
	SelectionToken string         `json:"selectionToken"`
	User           UsuarioLogin   `json:"user"`
	Clientes       []ClienteLogin `json:"clientes"`
}

// SeleccionResultado es la respuesta de POST /select-client.
type SeleccionResultado struct {
	Token string `json:"token"`
}
