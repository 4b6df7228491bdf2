package registry

var (
	DefaultVersion = 1
)

func NewStore(version int) Store {
	switch version {
	case DefaultVersion:
		return initV1Store()
	default:
		return nil
	}
}

func SetInstance(provider Store) {
	store = provider
	once.Do(func() {}) // Marking the sync once as done
}
