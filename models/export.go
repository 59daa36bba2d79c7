package models

// ExportSnapshot is the read-only view handed to the export collaborator for
// serialization to a backup file. The core never writes files itself.
//
// Categories excludes the built-in "all" entry: it is recreated on import and
// carrying it would duplicate the locked record.
type ExportSnapshot struct {
	Models           []Model    `json:"models"`
	Categories       []Category `json:"categories"`
	Favorites        []string   `json:"favorites"`
	PasswordChecksum string     `json:"passwordChecksum"`
}
