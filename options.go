package eqpaste

// Options holds options for one translation run.
type Options struct {
	Config       *Config
	IssueHandler func(Issue)

	ownConfig bool
}

// Option is a function that configures Options.
type Option func(*Options)

// WithConfig sets a custom Config.
func WithConfig(config *Config) Option {
	return func(opts *Options) {
		if config != nil {
			opts.Config = config
			opts.ownConfig = false
		}
	}
}

// WithPlainText sets whether plain-text spans are forwarded at all.
func WithPlainText(enable bool) Option {
	return func(opts *Options) {
		opts.mutableConfig().IncludePlainText = enable
	}
}

// WithMarkdownText sets whether plain-text spans are flattened from Markdown first.
func WithMarkdownText(enable bool) Option {
	return func(opts *Options) {
		opts.mutableConfig().MarkdownText = enable
	}
}

// WithTextChunkSize splits plain-text spans into InsertText actions of at most n runes.
// n <= 0 emits each span as a single action.
func WithTextChunkSize(n int) Option {
	return func(opts *Options) {
		opts.mutableConfig().TextChunkSize = n
	}
}

// WithIssueHandler sets a callback for malformed input that was recovered locally.
func WithIssueHandler(handler func(Issue)) Option {
	return func(opts *Options) {
		opts.IssueHandler = handler
	}
}

// mutableConfig 返回本次运行独有的配置副本，不改动调用方或默认配置
func (opts *Options) mutableConfig() *Config {
	if !opts.ownConfig {
		cfg := *opts.Config
		opts.Config = &cfg
		opts.ownConfig = true
	}
	return opts.Config
}

// defaultOptions returns the default options.
func defaultOptions() *Options {
	return &Options{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *Options {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}
