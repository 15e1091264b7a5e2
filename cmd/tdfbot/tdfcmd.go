/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"

	"github.com/bwmarrin/discordgo"

	"github.com/mikeb26/pokemon-tdftool/tdf"
	"github.com/mikeb26/pokemon-tdftool/tomweb"
)

type TdfSubCommand string

const (
	TdfAboutCmd     TdfSubCommand = "about"
	TdfHelpCmd      TdfSubCommand = "help"
	TdfCheckCmd     TdfSubCommand = "check"
	TdfRosterCmd    TdfSubCommand = "roster"
	TdfStandingsCmd TdfSubCommand = "standings"
)

var tdfSubCmdHdlrs = map[TdfSubCommand]CmdHandler{
	TdfAboutCmd:     tdfAboutCmdHandler,
	TdfHelpCmd:      tdfHelpCmdHandler,
	TdfCheckCmd:     tdfCheckCmdHandler,
	TdfRosterCmd:    tdfRosterCmdHandler,
	TdfStandingsCmd: tdfStandingsCmdHandler,
}

func tdfCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	data := inter.ApplicationCommandData()
	hdlr := tdfHelpCmdHandler
	if len(data.Options) > 0 {
		if subName := data.Options[0].Name; subName != "" {
			h, ok := tdfSubCmdHdlrs[TdfSubCommand(subName)]
			if ok {
				hdlr = h
			}
		}
	}
	return hdlr(ctx, inter)
}

//go:embed about.txt
var aboutText string

func tdfAboutCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(aboutText)

	return resp
}

//go:embed help.md
var helpText string

func tdfHelpCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	resp.Data.Content = truncateContent(helpText)
	return resp
}

// urlAndBroadcastOpts extracts the common url and broadcast options from a
// subcommand invocation.
func urlAndBroadcastOpts(inter *discordgo.Interaction) (string, bool) {
	data := inter.ApplicationCommandData()
	url := ""
	broadcast := false // default
	if len(data.Options) > 0 {
		for _, opt := range data.Options[0].Options {
			if opt.Name == "url" {
				url = opt.StringValue()
			} else if opt.Name == "broadcast" {
				broadcast = opt.BoolValue()
			}
		}
	}
	return url, broadcast
}

func tdfCheckCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	url, broadcast := urlAndBroadcastOpts(inter)
	if url == "" {
		resp.Data.Content = "Please provide a document URL."
		log.Printf("tdfbot.check: %v", resp.Data.Content)
		return resp
	}

	text, err := tomweb.NewClient(ctx).FetchDocument(ctx, url)
	if err != nil {
		resp.Data.Content = fmt.Sprintf("Error fetching %v: %v", url, err)
		log.Printf("tdfbot.check: %v", resp.Data.Content)
		return resp
	}

	result := tdf.IsCompatible(text)
	if result.Compatible {
		resp.Data.Content = fmt.Sprintf("%v is compatible", url)
	} else {
		resp.Data.Content = fmt.Sprintf("%v is NOT compatible: %v", url,
			result.Reason)
	}

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// fetchAndParse retrieves a TDF document and parses it, formatting any
// failure as a user-facing message.
func fetchAndParse(ctx context.Context, url string) (*tdf.Tournament, string) {
	text, err := tomweb.NewClient(ctx).FetchDocument(ctx, url)
	if err != nil {
		return nil, fmt.Sprintf("Error fetching %v: %v", url, err)
	}
	tourney, err := tdf.Parse(text)
	if err != nil {
		return nil, fmt.Sprintf("Error parsing %v: %v", url, err)
	}
	return tourney, ""
}

func tdfRosterCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	url, broadcast := urlAndBroadcastOpts(inter)
	if url == "" {
		resp.Data.Content = "Please provide a document URL."
		log.Printf("tdfbot.roster: %v", resp.Data.Content)
		return resp
	}

	tourney, errMsg := fetchAndParse(ctx, url)
	if errMsg != "" {
		resp.Data.Content = errMsg
		log.Printf("tdfbot.roster: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(tdf.BuildRosterOutput(tourney)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

func tdfStandingsCmdHandler(ctx context.Context,
	inter *discordgo.Interaction) *discordgo.InteractionResponse {

	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	}

	url, broadcast := urlAndBroadcastOpts(inter)
	if url == "" {
		resp.Data.Content = "Please provide a document URL."
		log.Printf("tdfbot.standings: %v", resp.Data.Content)
		return resp
	}

	tourney, errMsg := fetchAndParse(ctx, url)
	if errMsg != "" {
		resp.Data.Content = errMsg
		log.Printf("tdfbot.standings: %v", resp.Data.Content)
		return resp
	}

	if len(tourney.Standings) == 0 {
		resp.Data.Content = fmt.Sprintf("No match results found in %v.", url)
		log.Printf("tdfbot.standings: %v", resp.Data.Content)
		return resp
	}

	// Wrap output in code block for monospace formatting in Discord
	resp.Data.Content = fmt.Sprintf("```\n%s```",
		truncateContent(tdf.BuildStandingsOutput(tourney)))

	if broadcast {
		resp.Data.Flags = 0
	}

	return resp
}

// https://discord.com/developers/docs/resources/channel#start-thread-in-forum-or-media-channel-forum-and-media-thread-message-params-object
// limits messages to 2k characters
func truncateContent(s string) string {
	const MsgLimit = 1988 // keep space for newlines and markdown
	runes := []rune(s)
	if len(runes) > MsgLimit {
		s = fmt.Sprintf("%v...", string(runes[:MsgLimit]))
	}
	return s
}
