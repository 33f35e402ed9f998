package discord

import "github.com/bwmarrin/discordgo"

// PermissionBits maps command permission keys to the Discord permissions
// that grant them. Holding any one of the bits is enough.
var PermissionBits = map[string]int64{
	"commando.give":  discordgo.PermissionManageMessages,
	"commando.admin": discordgo.PermissionManageGuild,
}

// memberActor is the author of a Discord message.
type memberActor struct {
	id        string
	name      string
	guildID   string
	perms     int64
	developer bool
}

func (a *memberActor) ID() string       { return a.id }
func (a *memberActor) Name() string     { return a.name }
func (a *memberActor) Location() string { return a.guildID }

// HasPermission is true for developers, guild administrators, and members
// holding a bit mapped to key.
func (a *memberActor) HasPermission(key string) bool {
	if a.developer {
		return true
	}
	if a.perms&discordgo.PermissionAdministrator != 0 {
		return true
	}
	bits, ok := PermissionBits[key]
	return ok && a.perms&bits != 0
}
