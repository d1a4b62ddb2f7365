// Package graph defines the document formats read and written by clustermap.
//
// # Input documents
//
// An input document lists priced items and the two relation sets. It is
// read from JSON or YAML:
//
//	{
//	  "items": [
//	    {"id": "A", "price": 5, "payload": {"title": "Alpha"}},
//	    {"id": "B", "price": 3}
//	  ],
//	  "horizontal": [["A", "B"]],
//	  "vertical": []
//	}
//
// Payloads are carried through untouched. [Input.Validate] rejects empty or
// duplicate item ids and pairs that are not exactly two ids; everything else
// (unknown ids in pairs, self pairs, repeated pairs) is left to the engine,
// which tolerates it.
//
//	in, err := graph.ReadInputFile("items.yaml")
//	data, _ := graph.MarshalInput(in) // canonical JSON, used for cache keys
//
// # Layout documents
//
// A [Layout] is the serialized result of one engine run: ranked clusters
// with their hue and offset, super-clusters, and connectors with resolved
// endpoint coordinates. Its ID is a name-based UUID derived from the input
// hash and the layout options, so identical runs produce identical
// documents.
//
//	graph.WriteLayoutFile(layout, "items.layout.json")
//	layout, err := graph.ReadLayoutFile("items.layout.json")
package graph
