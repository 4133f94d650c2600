package commands

// Message constants
const (
	MsgShort = "Keep a dotbot config in sync with newly added dotfiles"
	MsgLong  = `autobot is a git pre-commit hook. On each commit it inspects the staged
diff for newly added files, appends the matching link entries to your
dotbot configuration (install.conf.yaml by default), and re-stages the
config so the update is part of the commit being formed.

Behavior is driven entirely by environment variables:

  AUTOBOT_DEBUG          non-empty enables verbose logging
  AUTOBOT_DISABLED       non-empty skips all processing
  AUTOBOT_REPO_ROOT      repository root (default ".")
  AUTOBOT_DOTBOT_CONF    link config path (default "install.conf.yaml")
  AUTOBOT_INCLUDE        colon-separated include directories (default: repo root)
  AUTOBOT_EXCLUDE        colon-separated exclude directories
  AUTOBOT_DELETE_BACKUP  non-empty removes the config backup after a sync

A synchronization failure never blocks the commit: the config is
restored from its backup and the hook exits 0.`
)
