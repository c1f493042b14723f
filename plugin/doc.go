// Package plugin defines the format plugin contract and the repository
// that dispatches files to plugins.
//
// # Contract
//
// A Plugin is a Recognizer (cheap, bounded prefix probe that never errors)
// plus GetReader (full parse, returning a Reader that answers path queries
// with *ir.Node values).
//
// # Dispatch
//
//	repo := plugin.NewRepository([]plugin.Plugin{jdx.NewPlugin(), andi.NewPlugin()})
//	r, err := repo.GetReader("spectrum.jdx", f)
//	root, err := r.Read("")
//
// For every plugin in order the stream is rewound to 0 and probed; on a
// match it is rewound again and handed to the plugin's GetReader. The first
// success is returned. A recognized plugin's failure ends the search unless
// the repository was built WithFallback(true).
package plugin
