package services

// AddBearer agrega el header Authorization con el token dado.
func AddBearer(headers map[string]string, token string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}

// AddTasasKey agrega el header x-api-key del servicio de tasas si está configurado.
func AddTasasKey(headers map[string]string, apiKey string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}
	if apiKey != "" {
		headers["x-api-key"] = apiKey
	}
	return headers
}
