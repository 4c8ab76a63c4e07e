package roster

// NBA returns the default roster: NBA franchises keyed by the
// identifiers the upstream ended-events feed uses for them.
func NBA() *Roster {
	return New([]Entry{
		{ID: "337268", Name: "Atlanta Hawks", Aliases: []string{"hawks"}},
		{ID: "337269", Name: "Boston Celtics", Aliases: []string{"celtics"}},
		{ID: "337270", Name: "Brooklyn Nets", Aliases: []string{"nets"}},
		{ID: "337271", Name: "Charlotte Hornets", Aliases: []string{"hornets"}},
		{ID: "337272", Name: "Chicago Bulls", Aliases: []string{"bulls"}},
		{ID: "337273", Name: "Cleveland Cavaliers", Aliases: []string{"cavaliers", "cavs"}},
		{ID: "337274", Name: "Dallas Mavericks", Aliases: []string{"mavericks", "mavs"}},
		{ID: "337275", Name: "Denver Nuggets", Aliases: []string{"nuggets"}},
		{ID: "337276", Name: "Detroit Pistons", Aliases: []string{"pistons"}},
		{ID: "337277", Name: "Golden State Warriors", Aliases: []string{"warriors", "gsw"}},
		{ID: "337278", Name: "Houston Rockets", Aliases: []string{"rockets"}},
		{ID: "337279", Name: "Indiana Pacers", Aliases: []string{"pacers"}},
		{ID: "337280", Name: "Los Angeles Clippers", Aliases: []string{"clippers", "la clippers"}},
		{ID: "337281", Name: "Los Angeles Lakers", Aliases: []string{"lakers", "la lakers"}},
		{ID: "337282", Name: "Memphis Grizzlies", Aliases: []string{"grizzlies"}},
		{ID: "337283", Name: "Miami Heat", Aliases: []string{"heat"}},
		{ID: "337284", Name: "Milwaukee Bucks", Aliases: []string{"bucks"}},
		{ID: "337285", Name: "Minnesota Timberwolves", Aliases: []string{"timberwolves", "wolves"}},
		{ID: "337286", Name: "New Orleans Pelicans", Aliases: []string{"pelicans"}},
		{ID: "337287", Name: "New York Knicks", Aliases: []string{"knicks"}},
		{ID: "337288", Name: "Oklahoma City Thunder", Aliases: []string{"thunder", "okc"}},
		{ID: "337289", Name: "Orlando Magic", Aliases: []string{"magic"}},
		{ID: "337290", Name: "Philadelphia 76ers", Aliases: []string{"76ers", "sixers"}},
		{ID: "337291", Name: "Phoenix Suns", Aliases: []string{"suns"}},
		{ID: "337292", Name: "Portland Trail Blazers", Aliases: []string{"trail blazers", "blazers"}},
		{ID: "337293", Name: "Sacramento Kings", Aliases: []string{"kings"}},
		{ID: "337294", Name: "San Antonio Spurs", Aliases: []string{"spurs"}},
		{ID: "337295", Name: "Toronto Raptors", Aliases: []string{"raptors"}},
		{ID: "337296", Name: "Utah Jazz", Aliases: []string{"jazz"}},
		{ID: "337297", Name: "Washington Wizards", Aliases: []string{"wizards"}},
	})
}
