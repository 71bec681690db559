package models

// CaregiverContact holds the person notified when stock runs low.
type CaregiverContact struct {
	Name     string `json:"name"`
	Relation string `json:"relation,omitempty"`
	Phone    string `json:"phone"`
}

// Settings is the persisted app configuration. The two robot endpoints are
// configured independently; the command endpoint is never derived from the
// data endpoint.
type Settings struct {
	RobotDataURL    string           `json:"robot_data_url"`
	RobotCommandURL string           `json:"robot_command_url"`
	DemoMode        bool             `json:"demo_mode"`
	Contact         CaregiverContact `json:"contact"`
}
