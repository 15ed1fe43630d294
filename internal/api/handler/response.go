package handler

// envelope is the response shape of the account/profile/favorite surface.
type envelope struct {
	Response any  `json:"response"`
	Success  bool `json:"success"`
}

// trackEnvelope is the response shape of the /tracks surface.
type trackEnvelope struct {
	Response any    `json:"response"`
	Status   string `json:"status"`
}

func ok(response any) envelope {
	return envelope{Response: response, Success: true}
}

func fail(message string) envelope {
	return envelope{Response: message, Success: false}
}
