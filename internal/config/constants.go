package config

// Base application details
const AppName = "jumble"
const Version = "0.3.0"
const ThemesDirName = "themes"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "jumble.log"

// UI Layout
const StatusBarHeight = 1

// Arrangement layout, in terminal cells
const DefaultLeftMargin = 2
const DefaultTopMargin = 1
const DefaultRightMargin = 2
const DefaultColumnStep = 2
const DefaultLineHeight = 2

// Swap policies and additive modifiers understood by the arranger
const PolicyExchange = "exchange"
const PolicyInsert = "insert"

const ModifierCtrl = "ctrl"
const ModifierAlt = "alt"
const ModifierShift = "shift"
const ModifierMeta = "meta"
