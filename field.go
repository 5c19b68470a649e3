// Package ccachestats reads the on-disk statistics format of ccache
// without needing to exec ccache itself.
//
// A ccache data directory holds a top-level "stats" file plus sixteen
// shard subdirectories named "0".."f", each with its own "stats" file.
// Every stats file is newline-delimited decimal text where line i holds
// the counter whose ordinal is i. ReadLeaf parses one such file and
// ReadDir merges a whole directory into a single snapshot.
package ccachestats

// Field identifies one ccache statistics counter.
//
// The constant's integer value is the field's data-file ordinal: the
// 0-indexed line at which its value appears in a stats file. Ordinals
// come from ccache's own counter enum and are frozen; never renumber.
type Field uint8

const (
	// FieldNone is ccache's sentinel counter. It carries no data.
	FieldNone Field = iota
	// FieldStdOut counts compilations where the compiler produced stdout.
	FieldStdOut
	// FieldStatus counts compile failures.
	FieldStatus
	// FieldError counts ccache internal errors.
	FieldError
	// FieldToCache counts cache misses.
	FieldToCache
	// FieldPreProcessor counts preprocessor errors.
	FieldPreProcessor
	// FieldCompiler counts failures to find the compiler.
	FieldCompiler
	// FieldMissing counts cache files that went missing.
	FieldMissing
	// FieldCacheHitCpp counts preprocessed cache hits.
	FieldCacheHitCpp
	// FieldArgs counts invocations with bad compiler arguments.
	FieldArgs
	// FieldLink counts invocations for linking.
	FieldLink
	// FieldNumFiles is the current number of files in the cache.
	FieldNumFiles
	// FieldTotalSize is the current cache size in kibibytes.
	FieldTotalSize
	// FieldObsoleteMaxFiles is no longer written by ccache.
	FieldObsoleteMaxFiles
	// FieldObsoleteMaxSize is no longer written by ccache.
	FieldObsoleteMaxSize
	// FieldSourceLang counts unsupported source languages.
	FieldSourceLang
	// FieldBadOutputFile counts unwritable output files.
	FieldBadOutputFile
	// FieldNoInput counts invocations without an input file.
	FieldNoInput
	// FieldMultiple counts invocations with multiple source files.
	FieldMultiple
	// FieldConfTest counts autoconf compiles and links.
	FieldConfTest
	// FieldUnsupportedOption counts unsupported compiler options.
	FieldUnsupportedOption
	// FieldOutStdOut counts invocations writing output to stdout.
	FieldOutStdOut
	// FieldCacheHitDir counts direct cache hits.
	FieldCacheHitDir
	// FieldNoOutput counts compilations producing no output.
	FieldNoOutput
	// FieldEmptyOutput counts compilations producing empty output.
	FieldEmptyOutput
	// FieldBadExtraFile counts errors hashing an extra file.
	FieldBadExtraFile
	// FieldCompCheck counts failed compiler checks.
	FieldCompCheck
	// FieldCantUsePch counts unusable precompiled headers.
	FieldCantUsePch
	// FieldPreProcessing counts invocations for preprocessing only.
	FieldPreProcessing
	// FieldNumCleanUps counts cache cleanups performed.
	FieldNumCleanUps
	// FieldUnsupportedDirective counts unsupported code directives.
	FieldUnsupportedDirective
	// FieldZeroTimeStamp records when the counters were last zeroed.
	FieldZeroTimeStamp

	// NumFields is the number of counters in a stats file.
	NumFields = 32
)

// FieldFormat selects how a counter's value is rendered for humans.
type FieldFormat uint8

const (
	// FormatPlain renders the raw decimal value.
	FormatPlain FieldFormat = iota
	// FormatTimestamp renders the value as a local wall-clock time.
	FormatTimestamp
	// FormatSizeTimes1024 renders the value as a kibibyte quantity
	// scaled to Kb/Mb/Gb.
	FormatSizeTimes1024
)

// FieldFlags control a counter's visibility in rendered output.
type FieldFlags uint8

const (
	// FlagNoZero marks fields ccache considers meaningful even at zero.
	// It is carried for compatibility; no rendering path consults it.
	FlagNoZero FieldFlags = 1 << iota
	// FlagAlways shows the field in pretty output even when zero.
	FlagAlways
	// FlagNever suppresses the field from all output.
	FlagNever
)

// FieldMeta is the immutable per-field metadata record.
type FieldMeta struct {
	// ID is the stable machine-readable name, as printed by
	// "ccache --print-stats".
	ID string
	// Message is the human label used by pretty output.
	Message string
	Format  FieldFormat
	Flags   FieldFlags
}

// The table is indexed by ordinal so that lookup stays O(1) and ordinal
// stability is enforced by construction. Entries are listed in display
// order for easier comparison against ccache's own stats table.
var fieldMeta = [NumFields]FieldMeta{
	FieldZeroTimeStamp:        {ID: "stats_zeroed_timestamp", Message: "stats zeroed", Format: FormatTimestamp, Flags: FlagAlways},
	FieldCacheHitDir:          {ID: "direct_cache_hit", Message: "cache hit (direct)", Flags: FlagAlways},
	FieldCacheHitCpp:          {ID: "preprocessed_cache_hit", Message: "cache hit (preprocessed)", Flags: FlagAlways},
	FieldToCache:              {ID: "cache_miss", Message: "cache miss", Flags: FlagAlways},
	FieldLink:                 {ID: "called_for_link", Message: "called for link"},
	FieldPreProcessing:        {ID: "called_for_preprocessing", Message: "called for preprocessing"},
	FieldMultiple:             {ID: "multiple_source_files", Message: "multiple source files"},
	FieldStdOut:               {ID: "compiler_produced_stdout", Message: "compiler produced stdout"},
	FieldNoOutput:             {ID: "compiler_produced_no_output", Message: "compiler produced no output"},
	FieldEmptyOutput:          {ID: "compiler_produced_empty_output", Message: "compiler produced empty output"},
	FieldStatus:               {ID: "compile_failed", Message: "compile failed"},
	FieldError:                {ID: "internal_error", Message: "ccache internal error"},
	FieldPreProcessor:         {ID: "preprocessor_error", Message: "preprocessor error"},
	FieldCantUsePch:           {ID: "could_not_use_precompiled_header", Message: "can't use precompiled header"},
	FieldCompiler:             {ID: "could_not_find_compiler", Message: "couldn't find the compiler"},
	FieldMissing:              {ID: "missing_cache_file", Message: "cache file missing"},
	FieldArgs:                 {ID: "bad_compiler_arguments", Message: "bad compiler arguments"},
	FieldSourceLang:           {ID: "unsupported_source_language", Message: "unsupported source language"},
	FieldCompCheck:            {ID: "compiler_check_failed", Message: "compiler check failed"},
	FieldConfTest:             {ID: "autoconf_test", Message: "autoconf compile/link"},
	FieldUnsupportedOption:    {ID: "unsupported_compiler_option", Message: "unsupported compiler option"},
	FieldUnsupportedDirective: {ID: "unsupported_code_directive", Message: "unsupported code directive"},
	FieldOutStdOut:            {ID: "output_to_stdout", Message: "output to stdout"},
	FieldBadOutputFile:        {ID: "bad_output_file", Message: "could not write to output file"},
	FieldNoInput:              {ID: "no_input_file", Message: "no input file"},
	FieldBadExtraFile:         {ID: "error_hashing_extra_file", Message: "error hashing extra file"},
	FieldNumCleanUps:          {ID: "cleanups_performed", Message: "cleanups performed", Flags: FlagAlways},
	FieldNumFiles:             {ID: "files_in_cache", Message: "files in cache", Flags: FlagNoZero | FlagAlways},
	FieldTotalSize:            {ID: "cache_size_kibibyte", Message: "cache size", Format: FormatSizeTimes1024, Flags: FlagNoZero | FlagAlways},
	FieldObsoleteMaxFiles:     {ID: "obsolete_max_files", Message: "OBSOLETE", Flags: FlagNoZero | FlagNever},
	FieldObsoleteMaxSize:      {ID: "obsolete_max_size", Message: "OBSOLETE", Flags: FlagNoZero | FlagNever},
	FieldNone:                 {ID: "none", Message: "none", Flags: FlagNever},
}

// Meta returns the metadata record for the field. It is total over the
// 32 declared fields; out-of-range values yield the sentinel's record.
func (f Field) Meta() FieldMeta {
	if f >= NumFields {
		return fieldMeta[FieldNone]
	}
	return fieldMeta[f]
}

// String returns the field's stable machine-readable id.
func (f Field) String() string {
	return f.Meta().ID
}

// FieldDataOrder lists every field by data-file ordinal, i.e. the order
// their values appear line by line in a stats file.
var FieldDataOrder = [NumFields]Field{
	FieldNone,
	FieldStdOut,
	FieldStatus,
	FieldError,
	FieldToCache,
	FieldPreProcessor,
	FieldCompiler,
	FieldMissing,
	FieldCacheHitCpp,
	FieldArgs,
	FieldLink,
	FieldNumFiles,
	FieldTotalSize,
	FieldObsoleteMaxFiles,
	FieldObsoleteMaxSize,
	FieldSourceLang,
	FieldBadOutputFile,
	FieldNoInput,
	FieldMultiple,
	FieldConfTest,
	FieldUnsupportedOption,
	FieldOutStdOut,
	FieldCacheHitDir,
	FieldNoOutput,
	FieldEmptyOutput,
	FieldBadExtraFile,
	FieldCompCheck,
	FieldCantUsePch,
	FieldPreProcessing,
	FieldNumCleanUps,
	FieldUnsupportedDirective,
	FieldZeroTimeStamp,
}

// FieldDisplayOrder lists every field in the curated order used for
// rendered output. It follows ccache's own stats table: the zeroing
// timestamp leads, hit/miss counters come next, and the sentinel closes
// the sequence. It is unrelated to ordinal order.
var FieldDisplayOrder = [NumFields]Field{
	FieldZeroTimeStamp,
	FieldCacheHitDir,
	FieldCacheHitCpp,
	FieldToCache,
	FieldLink,
	FieldPreProcessing,
	FieldMultiple,
	FieldStdOut,
	FieldNoOutput,
	FieldEmptyOutput,
	FieldStatus,
	FieldError,
	FieldPreProcessor,
	FieldCantUsePch,
	FieldCompiler,
	FieldMissing,
	FieldArgs,
	FieldSourceLang,
	FieldCompCheck,
	FieldConfTest,
	FieldUnsupportedOption,
	FieldUnsupportedDirective,
	FieldOutStdOut,
	FieldBadOutputFile,
	FieldNoInput,
	FieldBadExtraFile,
	FieldNumCleanUps,
	FieldNumFiles,
	FieldTotalSize,
	FieldObsoleteMaxFiles,
	FieldObsoleteMaxSize,
	FieldNone,
}
