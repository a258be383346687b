package domain

// Transition is a single edge of the transition relation.
// Label is either a declared alphabet symbol or Epsilon.
type Transition struct {
	From  State  `json:"from" yaml:"from" mapstructure:"from"`
	Label Symbol `json:"label" yaml:"label" mapstructure:"label"`
	To    State  `json:"to" yaml:"to" mapstructure:"to"`
}

// Definition is the raw description of an automaton as produced by a loader.
// It carries no guarantees; automaton.New validates it into a Model.
type Definition struct {
	Alphabet    []Symbol     `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
	States      []State      `json:"states" yaml:"states" mapstructure:"states"`
	Initial     State        `json:"initial" yaml:"initial" mapstructure:"initial"`
	Finals      []State      `json:"finals" yaml:"finals" mapstructure:"finals"`
	Transitions []Transition `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}
