package loyalty

// Enrollment carries data required to join a customer to the program
type Enrollment struct {
	Name          string
	Email         string
	Phone         string
	InitialPoints int
	CardColor     string
	TextColor     string
}
