package models

// BackupSnapshot bundles all four collections into the single document
// exchanged with remote storage. Every field is optional; a nil field means
// the snapshot does not carry that collection and restore must leave the
// live document alone. The tags are omitzero, not omitempty: a present but
// empty collection must survive marshalling as [] so a restore clears the
// live document instead of skipping it.
type BackupSnapshot struct {
	Vehicles         []Vehicle         `json:"vehicles,omitzero"`
	PermanentClients []PermanentClient `json:"permanentClients,omitzero"`
	Settings         *Settings         `json:"settings,omitzero"`
	DailyStats       []DailyStat       `json:"dailyStats,omitzero"`
}
