package store

// Collection names one storage location per entity.
type Collection string

const (
	Treks      Collection = "trek"
	BlogPosts  Collection = "blogpost"
	Inquiries  Collection = "inquiry"
	AdminUsers Collection = "adminuser"
)

func AllCollections() []Collection {
	return []Collection{Treks, BlogPosts, Inquiries, AdminUsers}
}

func (c Collection) String() string {
	return string(c)
}
