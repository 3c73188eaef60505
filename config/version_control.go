package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.1.0"

	// Modular tools
	Benchmark   = "v1.0.0"
	Six_Frame   = "v1.1.0"
	ORF_Finder  = "v2.0.0" // Protein-level scan of translated frames
	Codon_Table = "v1.0.0"
)
