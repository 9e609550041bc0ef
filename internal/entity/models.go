package entity

// Chunk is the atomic retrievable unit of the knowledge base. JSON field
// names match the persisted chunks_metadata.json artifact and are order
// significant: position i in the metadata slice corresponds to position i
// in the vector index.
type Chunk struct {
	Subject string  `json:"materia"`
	Topic   *string `json:"topico"`
	Text    string  `json:"texto"`
}

// AskRequest is the inbound payload of POST /perguntar.
type AskRequest struct {
	Text    string `json:"texto"`
	Subject string `json:"materia,omitempty"`
	Topic   string `json:"topico,omitempty"`
}

// AskResponse carries the generated answer back to the client.
type AskResponse struct {
	Answer string `json:"resposta"`
}
