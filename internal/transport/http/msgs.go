package http

const (
	MsgInvalidID   = "invalid id"
	MsgInvalidJSON = "invalid JSON"
	MsgNotFound    = "not found"
	MsgUpdated     = "Customer updated successfully"
	MsgDeleted     = "Customer deleted successfully"

	serverErrorPrefix = "Server error: "
)
