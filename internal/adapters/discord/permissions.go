package discord

import "github.com/bwmarrin/discordgo"

func (r *Router) requireAdminOrRoles(s *discordgo.Session, ic *discordgo.InteractionCreate) bool {
	if ic.Member == nil || ic.Member.User == nil {
		ReplyEphemeral(s, ic, "🔒 This command only works inside a server.")
		return false
	}

	// Owner
	if g, _ := s.State.Guild(ic.GuildID); g != nil && ic.Member.User.ID == g.OwnerID {
		return true
	}

	// Administrator bit (el member de la interacción ya trae los permisos resueltos)
	if ic.Member.Permissions&discordgo.PermissionAdministrator != 0 {
		return true
	}
	roles, _ := s.GuildRoles(ic.GuildID)
	if hasAdminRole(ic.Member.Roles, roles, r.cfg.AdminRoleIDs) {
		return true
	}

	ReplyEphemeral(s, ic, "🔒 You don't have permission to use this command.")
	return false
}

// hasAdminRole: algún rol con Administrator o alguno de los roles configurados.
func hasAdminRole(memberRoles []string, guildRoles []*discordgo.Role, adminRoleIDs []string) bool {
	has := make(map[string]struct{}, len(memberRoles))
	for _, rid := range memberRoles {
		has[rid] = struct{}{}
	}
	for _, ro := range guildRoles {
		if _, ok := has[ro.ID]; ok && ro.Permissions&discordgo.PermissionAdministrator != 0 {
			return true
		}
	}
	for _, want := range adminRoleIDs {
		if _, ok := has[want]; ok {
			return true
		}
	}
	return false
}
