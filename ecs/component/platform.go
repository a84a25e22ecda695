package component

type Platform struct {
	Name string
}

var PlatformComponent = NewComponent[Platform]()
