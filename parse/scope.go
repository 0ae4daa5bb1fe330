package parse

import "fmt"

// scope holds the names declared by one parameter list.
type scope struct {
	kv map[string]Argument
}

func (s *scope) lookup(k string) (Argument, error) {
	arg, ok := s.kv[k]
	if ok {
		return arg, nil
	}
	return Argument{}, fmt.Errorf("%s is not defined", k)
}

func (s *scope) define(k string, v Argument) error {
	if _, err := s.lookup(k); err == nil {
		return fmt.Errorf("redefinition of parameter '%s'", k)
	}
	s.kv[k] = v
	return nil
}

func newScope() *scope {
	ret := &scope{}
	ret.kv = make(map[string]Argument)
	return ret
}
