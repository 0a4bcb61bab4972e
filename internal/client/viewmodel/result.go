package viewmodel

// Status is the lifecycle of a screen fetch or submission.
type Status int

const (
	Idle Status = iota
	Loading
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Loading:
		return "loading"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

// Result is what a screen renders: a status plus either data or an error.
type Result[T any] struct {
	Status Status
	Data   T
	Err    error
}

func Succeeded[T any](data T) Result[T] {
	return Result[T]{Status: Success, Data: data}
}

func Failed[T any](err error) Result[T] {
	return Result[T]{Status: Failure, Err: err}
}
