package reconcile

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/dirsync/pkg/connector"
	"github.com/agentstation/dirsync/pkg/differ"
	"github.com/agentstation/dirsync/pkg/identity"
	"github.com/agentstation/dirsync/pkg/logging"
	"github.com/agentstation/dirsync/pkg/mapping"
	"github.com/agentstation/dirsync/pkg/policy"
	"github.com/agentstation/dirsync/pkg/store"
	"github.com/agentstation/dirsync/pkg/template"
)

// Engine reconciles connector records against the internal identity
// model. It is stateless across calls and safe for concurrent use with
// distinct contexts; the ReadTx passed to each call is borrowed, never
// retained.
type Engine struct {
	differ      differ.Differ
	generator   *policy.Generator
	protections map[identity.Kind]protection
	logger      *zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDiffer sets the differ used by the patch path.
func WithDiffer(d differ.Differ) Option {
	return func(e *Engine) {
		if d != nil {
			e.differ = d
		}
	}
}

// WithGenerator sets the secret generator used by the build path.
func WithGenerator(g *policy.Generator) Option {
	return func(e *Engine) {
		if g != nil {
			e.generator = g
		}
	}
}

// New creates a new Engine. The per-kind protection rules are resolved
// into a table here, at construction, rather than looked up dynamically
// per call.
func New(opts ...Option) *Engine {
	e := &Engine{
		differ:    differ.New(differ.WithStrict(true)),
		generator: policy.NewGenerator(),
		logger:    logging.Default(),
	}
	e.protections = map[identity.Kind]protection{
		identity.KindPerson: e.protectPerson,
		identity.KindGroup:  e.protectGroup,
		identity.KindObject: e.protectObject,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Build produces a fully built entity snapshot from a connector record:
// schema mapping, template overlay, and, for persons the record left
// without a credential, a policy-compliant generated one when the target
// resource is configured for it. Generation failure degrades to a random
// secret; the caller always receives a usable snapshot.
func (e *Engine) Build(tx store.ReadTx, rec *connector.Record, ctx *Context) identity.Snapshot {
	snap := e.build(rec, ctx)
	if snap == nil {
		return nil
	}

	if p, ok := snap.(*identity.Person); ok && p.Password == "" && ctx.GeneratePassword {
		p.Password = e.generateSecret(tx, p, ctx)
	}

	return snap
}

// build is the shared mapping + template path, without credential
// generation. The patch path uses it directly so that updates never
// manufacture a credential change out of thin air.
func (e *Engine) build(rec *connector.Record, ctx *Context) identity.Snapshot {
	snap := mapping.ToSnapshot(rec, ctx.Mapping, ctx.Kind, ctx.DestinationRealm)
	if snap == nil {
		return nil
	}
	template.Apply(snap, ctx.Template)
	return snap
}

// generateSecret resolves the applicable password rules and synthesizes
// a compliant secret, falling back to a random one on any rule set
// problem. The fallback is logged; the secret never is.
func (e *Engine) generateSecret(tx store.ReadTx, p *identity.Person, ctx *Context) string {
	resources := p.Resources
	if ctx.Resource != "" {
		resources = appendMissing(resources, ctx.Resource)
	}

	rules := policy.Resolve(tx, p.Realm, resources)
	secret, err := e.generator.Generate(rules)
	if err != nil {
		e.logger.Warn().
			Err(err).
			Str("realm", p.Realm).
			Str("username", p.Username).
			Msg("could not generate policy-compliant secret, falling back to random")
		secret = policy.Random(policy.FallbackLength)
	}
	return secret
}

// Patch produces the minimal patch bringing original in line with the
// record. It returns nil only for an unrecognized or mismatched entity
// kind; otherwise it always returns a patch, possibly with zero field
// changes, which callers treat as a no-op update.
func (e *Engine) Patch(tx store.ReadTx, key string, rec *connector.Record, original identity.Snapshot, ctx *Context) *differ.Patch {
	if original == nil || original.Kind() != ctx.Kind {
		return nil
	}
	protect, ok := e.protections[ctx.Kind]
	if !ok {
		return nil
	}

	updated := e.build(rec, ctx)
	if updated == nil {
		return nil
	}
	updated.Core().Key = key

	protect(tx, ctx, updated, original)

	patch := e.differ.Diff(updated, original)
	differ.Clean(patch)
	return patch
}

// appendMissing returns have with v appended if not already present.
func appendMissing(have []string, v string) []string {
	for _, h := range have {
		if h == v {
			return have
		}
	}
	out := make([]string, 0, len(have)+1)
	out = append(out, have...)
	return append(out, v)
}
