package models

import (
	"encoding/json"

	"github.com/rpupo63/saas-starter-backend/docstore"
)

// ToDocument converts a model into a schemaless document via its JSON
// encoding, so field names in the store match the wire format.
func ToDocument(v any) (docstore.Document, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc docstore.Document
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// FromDocument decodes a stored document back into a model.
func FromDocument(doc docstore.Document, dst any) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, dst)
}
