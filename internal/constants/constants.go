package constants

const (
	Create = "CREATE"
	Delete = "DELETE"
)
