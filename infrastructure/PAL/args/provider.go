package args

type Provider interface {
	Args() []string
}
