package dto

// BackupResponse lists the objects written by one backup run.
type BackupResponse struct {
	Directory string   `json:"directory"`
	Files     []string `json:"files"`
}
