package spec

// ExperimentSpec is the optional YAML description of a run. Pointer fields
// distinguish "unset" from a legitimate zero value.
type ExperimentSpec struct {
	ExperimentID  string       `yaml:"experiment_id" validate:"omitempty,max=128"`
	Seed          *uint64      `yaml:"seed"`
	Papers        *int         `yaml:"papers" validate:"omitempty,gte=0,lte=100000"`
	Judges        []string     `yaml:"judges" validate:"omitempty,unique,dive,required"`
	Significance  string       `yaml:"significance" validate:"omitempty,oneof=approximate exact"`
	H3Variant     string       `yaml:"h3_variant" validate:"omitempty,oneof=ensemble cross_model"`
	EnsembleJudge string       `yaml:"ensemble_judge"`
	Output        OutputConfig `yaml:"output"`
	Sinks         SinksConfig  `yaml:"sinks"`
}

type OutputConfig struct {
	Results string `yaml:"results"`
	Ratings string `yaml:"ratings,omitempty"`
}

type SinksConfig struct {
	Postgres      *PostgresSink      `yaml:"postgres,omitempty"`
	Elasticsearch *ElasticsearchSink `yaml:"elasticsearch,omitempty"`
}

type PostgresSink struct {
	Connection string `yaml:"connection" validate:"required"`
}

type ElasticsearchSink struct {
	Addresses []string `yaml:"addresses" validate:"required,min=1,dive,url"`
	Index     string   `yaml:"index"`
	Username  string   `yaml:"username,omitempty"`
	Password  string   `yaml:"password,omitempty"`
}
