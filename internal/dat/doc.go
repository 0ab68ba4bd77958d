// Package dat parses DAT catalog files, the archival-community XML
// convention enumerating known games and their constituent ROM files.
//
// A catalog is a <datafile> root with a <header> block and repeated <game>
// elements, each carrying a name attribute and one or more <rom> children.
// Parsing preserves catalog order; downstream components rely on it for
// stable playlist ordering.
//
// The package also hosts the optional network schema validation: when a
// document declares an xsi:schemaLocation, Validator fetches the schema URL
// and checks it is retrievable, well-formed XML. The check never affects
// parsed output.
package dat
