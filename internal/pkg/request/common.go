package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ByUIDRequest addresses a user by the identifier issued by the sign-in provider.
// These are opaque strings, not UUIDs.
type ByUIDRequest struct {
	UID string `uri:"uid" binding:"required,max=128"`
}
