package admins

type Repo interface {
	Upsert(admin *Admin) error
	Delete(id string) error
	GetByEmail(email string) (*Admin, error)
	GetByID(id string) (*Admin, error)
	List() ([]*Admin, error)
	SetStatus(id string, status StatusType) error
	SetLastLogin(id string) error
}
