package schema

// UsersAccountTable represents the 'users.account' table
type UsersAccountTable struct {
	Table        string
	ID           string
	Username     string
	Email        string
	PasswordHash string
	DisplayName  string
	AvatarURL    string
	Bio          string
	Role         string
	IsVerified   string
	CreatedAt    string
	UpdatedAt    string
	DeletedAt    string
}

// UsersAccount is the schema definition for users.account
var UsersAccount = UsersAccountTable{
	Table:        "users.account",
	ID:           "id",
	Username:     "username",
	Email:        "email",
	PasswordHash: "passwordhash",
	DisplayName:  "displayname",
	AvatarURL:    "avatarurl",
	Bio:          "bio",
	Role:         "role",
	IsVerified:   "isverified",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
	DeletedAt:    "deletedat",
}

func (t UsersAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Email, t.PasswordHash, t.DisplayName, t.AvatarURL,
		t.Bio, t.Role, t.IsVerified, t.CreatedAt, t.UpdatedAt, t.DeletedAt,
	}
}
