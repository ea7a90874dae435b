package di_test

type DB struct {
	DSN string
}

type Logger struct {
	Level string
}

type BasketService struct {
	DB     *DB
	Logger *Logger
}

type UserService struct {
	DB     *DB
	Logger *Logger
	Basket *BasketService
}

// Greeter is used to check that interface types work as keys.
type Greeter interface {
	Greet() string
}

type english struct{}

func (english) Greet() string { return "hello" }
