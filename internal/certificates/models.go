package certificates

// Record is one certification area returned by the list endpoint.
type Record struct {
	ID   int    `json:"idAreaCertificacion"`
	Name string `json:"nombre"`
	// Type is nil when the upstream omits oTipoCertificacion or sends null.
	Type *CertificationType `json:"oTipoCertificacion"`
}

// CertificationType is the nested type attached to a Record.
type CertificationType struct {
	Name string `json:"nombre"`
}

// TypeName returns the nested type name, or "" when the record has no type.
func (r Record) TypeName() string {
	if r.Type == nil {
		return ""
	}
	return r.Type.Name
}

// envelope is the response wrapper used by every endpoint of the API.
type envelope struct {
	OK      bool     `json:"todoOk"`
	Message string   `json:"mensaje"`
	Data    []Record `json:"data"`
}
