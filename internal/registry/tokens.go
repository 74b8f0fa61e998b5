package registry

// The table preserves the source ordering of the Puzzle Swap token list:
// resolution is first-match-wins, so order is part of the contract.
var tokens = []Token{
	{AssetID: "AP4Cb5xLYGH6ZigHreCZHoXpQTWDkPsG2BHqfDUx6taJ", Name: "ROME", Categories: []string{"stable", "defi", "common"}},
	{AssetID: "WAVES", Name: "WAVES", Categories: []string{"global", "defi", "common"}},
	{AssetID: "6DD42Rvu7Dd9Wp7g5LGAmLzuGt49uCqyRRyjy1JKaCrA", Name: "PL-WAVES"},
	{AssetID: "5wmZkXMNgtQCPhkrDPwJ2JxjRNQGFr1NLkwx4kBoDP74", Name: "PL-USDT"},
	{AssetID: "BPkBU8usNQoveGFmEyBLL1XzsG6BLXnmzMYjpvNxjCAG", Name: "PL-ETH"},
	{AssetID: "DG2xFkPdDwKUoBkzGAhQtLpSGzfXLiCYPEzeKH2Ad24p", Name: "XTN.", Categories: []string{"global", "defi", "common"}},
	{AssetID: "HEB8Qaw9xrWpWs8tHsiATYGBWDBtP2S7kcPALrMu43AS", Name: "Puzzle", Categories: []string{"defi", "global", "common"}},
	{AssetID: "Atqv59EYzjFGuitKVnMRk6H8FukjoV3ktPorbEys25on", Name: "WX Network", Categories: []string{"defi", "common"}},
	{AssetID: "vAYvjoLheNuvi2wRdQYK9NUjJ6ZQ5EkAtx7jy36rK13", Name: "SBT ", Categories: []string{"defi"}},
	{AssetID: "DcAbWMXrfMeooG1BrZ9ipiseFSVm7zxTs1XZKRp6DVeZ", Name: "AXLY"},
	{AssetID: "9wc3LXNA4TEBsXyKtoLE9mrbDD7WMHXvXrCjZvabLAsi", Name: "USDT-ERC20-PPT", Categories: []string{"global", "stable"}},
	{AssetID: "DaErMEp76HtuvbbSYxDwLovRimaAwtEyQGFeHLQ3UWwh", Name: "USDT-TRC20-PPT"},
	{AssetID: "A81p1LTRyoq2rDR2TNxB2dWYxsiNwCSSi8sXef2SEkw", Name: "USDT-BSC-PPT", Categories: []string{"global", "stable"}},
	{AssetID: "Cu6FRaNphvp1iwmnyVRAvcnyVgLEwBGwSvGQrVsThAAD", Name: "USDT-POLY-PPT"},
	{AssetID: "G5WWWzzVsWRyzGf32xojbnfp7gXbWrgqJT8RcVWEfLmC", Name: "USDT-PPT"},
	{AssetID: "3ayH3PhWMkhFsySsUVcC8BvFf1QyxGB5BZuTPyVtmP4v", Name: "USDC-PPT"},
	{AssetID: "2Fge5HEBRD3XTeg7Xg3FW5yiB9HVJFQtMXiWMQo72Up6", Name: "WBTC-ERC20-PPT", Categories: []string{"global"}},
	{AssetID: "3VuV5WTmDz47Dmdn3QpcYjzbSdipjQE4JMdNe1xZpX13", Name: "ETH-Ethereum-PPT", Categories: []string{"global"}},
	{AssetID: "Ajso6nTTjptu2UHLx6hfSXVtHFtRBJCkKYd5SAyj7zf5", Name: "PLUTO", Categories: []string{"global", "defi"}},
	{AssetID: "6phK22ztGBW127gUFmdMEHKB3CVd6ZhWox2WtwJkbqTq", Name: "EAST", Categories: []string{"stable", "defi"}},
	{AssetID: "HYogWffUjS8Uw4bYA1Dn3qrGmJerMqkf139aJcHhk8yq", Name: "WAVESDLP"},
	{AssetID: "HGgabTqUS8WtVFUJzfmrTDMgEccJuZLBPhFgQFxvnsoW", Name: "USDC-ERC20-PPT", Categories: []string{"global", "stable"}},
	{AssetID: "4BKKSp6NoNcrFHyorZogDyctq1fq6w7114Ym1pw6HUtC", Name: "USDC-BSC-PPT", Categories: []string{"global", "stable"}},
	{AssetID: "DnsgQ23DYGgRDxUwjmZY4sEZ4QaRtUdLVuzDPBdWJo7G", Name: "NEXT WEEK PEPE"},
	{AssetID: "GAzAEjApmjMYZKPzri2g2VUXNvTiQGF7KDYZFFsP3AEq", Name: "PETE"},
	{AssetID: "7scqyYoVsNrpWbTAc78eRqNVcYLxMPzZs8EQfX7ruJAg", Name: "L2MP"},
	{AssetID: "4KvfJBzghmotV7MPWAoojerSbPud8ZgKYM4S3hvgssL8", Name: "ACRES"},
	{AssetID: "7E26JWe8XYXf4jNxH7CDAdFUjTg5fCTChHoCuZmfUoy1", Name: "WLGOLD"},
	{AssetID: "2thsACuHmzDMuNezPM32wg9a3BwUzBWDeSKakgz3cw21", Name: "POWER", Categories: []string{"defi"}},
	{AssetID: "3SjxA2YLdfF9fTRbzLm9xFn27C6MW34W1YsdJ6Axefns", Name: "BURN-XTN", Categories: []string{"defi"}},
	{AssetID: "73tY3E6Gd5AWYmsuq8m8Kek7KnJNAYyS3GoveTbc6jCi", Name: "WHIRLPOOL"},
	{AssetID: "GdrDHazRGcCYeCgDEZzLpsZ3E7jmrxYB7EDUiGfiVAr1", Name: "PZ burn-xtn", Categories: []string{"pz"}},
	{AssetID: "2r5xCUHFLQVHKNC5k6qqRnDTT485KvKwAtbNtM2Wy4wW", Name: "PZ burnxtnppt", Categories: []string{"pz"}},
	{AssetID: "AE12ZN9PQyPKHR5CqR2Qau31JqS68rZbVYxaJbRM8kFj", Name: "PZ bb", Categories: []string{"pz"}},
	{AssetID: "9dbpSr8d18qWQxn5fJJSS1LLQ8CmSZ6gYmjuPRzg3RBM", Name: "PZ oldgold", Categories: []string{"pz"}},
	{AssetID: "XjdJKWtPYCz585QB7LnxDP76UGRukazedDubUx9DHQH", Name: "PZ we", Categories: []string{"pz"}},
	{AssetID: "9MKixRt9rNRyaJCT2pexbXkuvpZBdJREdTU36bGit8iw", Name: "PZ megapete", Categories: []string{"pz"}},
	{AssetID: "6bZbRmou7M7wXBunMXQnZ4Rm66HxZF3KfMEiFwk3wmnA", Name: "PZ 5pool", Categories: []string{"pz"}},
	{AssetID: "EA7siGMSTxz6EtdpkCiVWQHupFT5N7UbvQrW9kvxCE42", Name: "PZ units", Categories: []string{"pz"}},
	{AssetID: "6TXFMpr6rG4tr2CuPmVRq1NsjgPLJ59s2VMVnL1ZLtpR", Name: "WIND", Categories: []string{"pz"}},
	{AssetID: "EW1uGLVo21Wd9i2Rhq8o4VKDTCQTGCGXE8DqayHGrLg8", Name: "BTCB-BSC-PPT", Categories: []string{"global"}},
	{AssetID: "B62hrgQAq41gB5ohyRdEvdwTwzgqiet4rxmEhvdLmEpX", Name: "ORIENT", Categories: []string{"defi"}},
	{AssetID: "HqieNeUxTqzMufgF49QvK99h2ShsAuJAGYKvYZrvRejN", Name: "ANOTE"},
	{AssetID: "5Lhv8uKnvGxA2cjbFXXKZFASk1cAFp9dRWkmLYhULtSX", Name: "FUDT"},
	{AssetID: "8caLEWCK2PWtJ9d3Qw7xxoBqV9p2fxpRLZCbrDAg6A5U", Name: "WBriacash"},
	{AssetID: "9cU6nGhCwKR4c14cVkyoVmG8fNPZEBFKEQedjDFPN7vo", Name: "PZ PZ 777"},
	{AssetID: "Fz1S3rRAF8RaBoFSKoohDxzfPBX4Jj8mCTFn1Mab8H3x", Name: "Sasha-X"},
	{AssetID: "3TEr6AczV2N9Etz6Q76dDnv1kv4C7L5vR2oe7dnrLbii", Name: "gxWX"},
	{AssetID: "34N9YcEETLWn93qYQ64EsP1x89tSruJU44RrEMSXXEPJ", Name: "USDT"},
	{AssetID: "6XtHjpXbs9RRJP2Sr9GUyVqzACcby9TkThHXnjVC5CDJ", Name: "USD Coin"},
	{AssetID: "8LQW8f7P5d5PZM7GtZEBgaqRPGSzS3DfPuiXrURJ4AJS", Name: "WBTC", Categories: []string{"global"}},
	{AssetID: "YiNbofFzC17jEHHCMwrRcpy9MrrjabMMLZxg8g5xmf7", Name: "sWAVES", Categories: []string{"defi"}},
	{AssetID: "C1iWsKGqLwjHUndiQ7iXpdmPum9PeCDFfyXBdJJosDRS", Name: "Duck Egg", Categories: []string{"ducks"}},
	{AssetID: "HZk1mbfuJpmxU1Fs4AX5MWLVYtctsNcg6e2C6VKqK8zk", Name: "Litecoin", Categories: []string{"global"}},
	{AssetID: "66a1br3BrkoaJgP7yEar9hJcSTvJPoH6PYBLqscXcMGo", Name: "BNB-BSC-PPT", Categories: []string{"global"}},
	{AssetID: "5UYBPpq4WoU5n4MwpFkgJnW3Fq4B1u3ukpK33ik4QerR", Name: "WBN", Categories: []string{"global"}},
	{AssetID: "At8D6NFFpheCbvKVnjVoeLL84Eo8NZn6ovManxfLaFWL", Name: "SURF", Categories: []string{"defi"}},
	{AssetID: "HkYbq1oqnfBnicWwXBRJZCxjM85zAVsQMdHvpQbDCRBo", Name: "WXB Token", Categories: []string{"defi"}},
	{AssetID: "8t4DPWTwPzpatHA9AkTxWAB47THnYzBsDnoY7fQqbG91", Name: "Tsunami Token", Categories: []string{"defi"}},
	{AssetID: "q2xCQyLDKXLzxcMY4PKuFDVknaLoMpq4o57pjJtLMe7", Name: "ThousandToken"},
	{AssetID: "8DLiYZjo3UUaRBTHU7Ayoqg4ihwb6YH1AfXrrhdjQ7K1", Name: "BUSD"},
	{AssetID: "4kXACcTnNJa14Zbs19irgg48G6jR5nWp8SgPndFWY5av", Name: "WART", Categories: []string{"defi"}},
	{AssetID: "H6CwbwXMRKRw6jb1dRUMVs2N6Sdg2wQcXPRaRkjZSjYU", Name: "NGNT"},
	{AssetID: "3KhNcHo4We1G5EWps7b1e5DTdLgWDzctc8S6ynu37KA", Name: "Curve DAO Token", Categories: []string{"defi", "global"}},
	{AssetID: "8zUYbdB8Q6mDhpcXYv52ji8ycfj4SDX4gJXS7YY3dA4R", Name: "WDAI", Categories: []string{"defi"}},
	{AssetID: "4YmM7mj3Av4DPvpNpbtK4jHbpzYDcZuY6UUnYpqTbzLj", Name: "WUNI", Categories: []string{"defi"}},
	{AssetID: "52PbiwUPKxxvKBKXxhAipecAvj4z5aETVFpg5mKkN6ZP", Name: "VLAD", Categories: []string{"global"}},
	{AssetID: "2bbGhKo5C31iEiB4CwGuqMYwjD7gCA9eXmm51fe2v8vT", Name: "LINK", Categories: []string{"defi"}},
	{AssetID: "HcHacFH51pY91zjJa3ZiUVWBww54LnsL4EP3s7hVGo9L", Name: "MATIC", Categories: []string{"defi"}},
	{AssetID: "BLRxWVJWaVuR2CsCoTvTw2bDZ3sQLeTbCofcJv7dP5J4", Name: "WYFI", Categories: []string{"defi"}},
	{AssetID: "bPWkA3MNyEr1TuDchWgdpqJZhGhfPXj7dJdr3qiW2kD", Name: "TurtleNetwork", Categories: []string{"defi"}},
	{AssetID: "GVxGPBtgVWMW1wHiFnfaCakbJ6sKgZgowJgW5Dqrd7JH", Name: "SHI", Categories: []string{"global"}},
	{AssetID: "4GZH8rk5vDmMXJ81Xqfm3ovFaczqMnQ11r7aELiNxWBV", Name: "WFTM", Categories: []string{"defi", "global"}},
	{AssetID: "eCNH1aqUnocub8PbNsxLNvZWGeVE98L2Crw3cGY6Gq2", Name: "MUNA"},
	{AssetID: "DUk2YTxhRoAqMJLus4G2b3fR8hMHVh6eiyFx5r29VR6t", Name: "Neutrino EUR"},
	{AssetID: "DHgwrRvVyqJsepd32YbBqUeDH4GJ1N984X8QoekjgH8J", Name: "WavesCommunity"},
	{AssetID: "4LHHvYGNKJUg5hj65aGD5vgScvCBmLpdRFtjokvCjSL8", Name: "WEST"},
	{AssetID: "7LMV3s1J4dKpMQZqge5sKYoFkZRLojnnU49aerqos4yg", Name: "ENNO"},
	{AssetID: "9sQutD5HnRvjM1uui5cVC4w9xkMPAfYEV8ymug3Mon2Y", Name: "SIGN"},
	{AssetID: "Ehie5xYpeN8op1Cctc6aGUrqx8jq3jtf1DSjXDbfm7aT", Name: "SWOP", Categories: []string{"defi"}},
	{AssetID: "DSbbhLsSTeDg5Lsiufk2Aneh3DjVqJuPr2M9uU1gwy5p", Name: "VIRES", Categories: []string{"defi"}},
	{AssetID: "474jTeYx2r2Va35794tCScAXWJG9hU2HcgxzMowaZUnu", Name: "WETH", Categories: []string{"global"}},
	{AssetID: "A2hcw6RV23Fc8Y8FNfV35Sq5QeS9Tgp6n8hbrESiRvXX", Name: "SHEG", Categories: []string{"ducks"}},
	{AssetID: "usUeJwSpvghP5FR6jE9X4fUJbgXyxXnAezSgbzoMA8K", Name: "TEAM DUXPLORER", Categories: []string{"ducks"}},
	{AssetID: "FPzcaiEjyG6syoXLY1aghWdPwExvRezGbPXjmL3Gcofw", Name: "TEAM MATH", Categories: []string{"ducks"}},
	{AssetID: "9mFbBseP3RSC2veLrBgiLJMXDjahwBiH44WnqMfdkgid", Name: "TEAM TURTLE", Categories: []string{"ducks"}},
	{AssetID: "E4cL4MDRTPz9Wo1hHkxQv4ZzpxVL5136JVaki4wGz2QZ", Name: "TEAM EGGSEGGS", Categories: []string{"ducks"}},
	{AssetID: "5JQ8yUY4vnB19s4bXSGVYsNEyA9Bag6jbMtVEgFHvYM7", Name: "TEAM LATAM", Categories: []string{"ducks"}},
	{AssetID: "J4iWJS2kGmAqLC4dYFuHvmqXK1E6rBJaRTA6nd1VmFkj", Name: "TEAM FOMO", Categories: []string{"ducks"}},
	{AssetID: "2x8vsNgrBgLq9GWpnTNSVXTGq3cMLSvWWepR8CX36fVZ", Name: "TEAM MUNDOCRYPTO", Categories: []string{"ducks"}},
	{AssetID: "6pHc1PyBcXyS74eBEo95V3ecQvhAypL9RfsUUKtHDUq2", Name: "TEAM EGGPOINT", Categories: []string{"ducks"}},
	{AssetID: "6muMrLavuvuSZXgy1cQrvYm92rGbprNXGdj6Bg7HAtTV", Name: "TEAM ENDO", Categories: []string{"ducks"}},
	{AssetID: "6xxMPcvHneBvZk7p82oUdQw4J3F9bsFgtm7YYXQSEDx", Name: "TEAM MARVIN", Categories: []string{"ducks"}},
	{AssetID: "J3dRSWWyRoX55YuuXQhBa2uZ4bUczkqSFC94VZeCoWKA", Name: "TEAM IDO", Categories: []string{"ducks"}},
	{AssetID: "DAGQvqQg4F5YTQCQ5JFaVJdZEVoTvecuw2W9ybL5P1hR", Name: "TEAM STREET", Categories: []string{"ducks"}},
	{AssetID: "BwCk5zUMTuYtFFu3euo3g6Fwdk7TALrr5C8wvdzps8R5", Name: "TEAM KOLKHOZ", Categories: []string{"ducks"}},
	{AssetID: "4q9KXJCi9ZbmhttXuLRabd9epgpvowVuyKDuuNdkahdC", Name: "TEAM FORK", Categories: []string{"ducks"}},
	{AssetID: "HK72uehJjkM22phZ5wHhBYxprP3r41eYtk9fYu5uetne", Name: "", Categories: []string{"ducks"}},
	{AssetID: "D4TPjtzpsDEJFS1pUAkvh1tJJJMNWGcSrds9sveBoQka", Name: "RACE", Categories: []string{"ducks"}},
	{AssetID: "F2AKkA513k5yHEJkLsU6vWxCYYk811GpjLhwEv2WGwZ9", Name: "WXUSDNWXLP"},
	{AssetID: "FuUobp3DcfARzDLcvtVW37i7FvMPvCCpgdcvWke8sBuh", Name: "wxWXUSDN_TCI"},
	{AssetID: "97zHFp1C3cB7qfvx8Xv5f2rWp9nUSG5UnAamfPcW6txf", Name: "USDTUSDNWXLP"},
	{AssetID: "2CD44HANZzsdU7yqRsmz7L9eA2Foh4YYMC4azMbaZEj6", Name: "wxUSDTUSDN_TCI"},
	{AssetID: "EK6N7S38xbtBT3SxAqoGdDLCiX6rojX6G169CnSyuE5", Name: "USDCXTNLP"},
	{AssetID: "HZKFpNfyPG5gt4D6Nfy1zQSg2Ptmqv932GjNTCyBEeKP", Name: "wxUSDCUSDN_TCI"},
	{AssetID: "EPhdEfmQaNcHyvDmRGhnLhgcJtKZ2a4k3ZBmKWtAEWyH", Name: "USDCUSDTLP"},
	{AssetID: "BqPYkaiz7Le6fFu1rjZ54anrpT57EpvyugZCUqrsjXj", Name: "wxUSDCUSDT_TCI"},
	{AssetID: "E8zHu33GfcNyGLypX77gZiUXfvuZQeaYmiEfsy7VYNwP", Name: "PUZZLEXTNLP"},
	{AssetID: "Dh9QXSSABE5V6aRfu3mCbDAUokbpE7ER7pbZV6cvyg1A", Name: "wxPUZZLEUSDN_TCI"},
	{AssetID: "AbunLGErT5ctzVN8MVjb4Ad9YgjpubB8Hqb17VxzfAck", Name: "Waves World"},
	{AssetID: "3tG9SL7u9X4f8T4N8bqmVmY32eoBSxt5bxYBmT88SJwm", Name: "$MINI"},
	{AssetID: "2tVLdi5fQXk2JcuDAojhctnDp5B5PZhNMyj5GUpeC3tZ", Name: "VIRES_USDT_LP", Categories: []string{"defi"}},
	{AssetID: "FSRHtSyXRXQjzQLRtmaqFpBDDCNjY8PU8KNtwoGXVBmr", Name: "VIRES_USDC_LP", Categories: []string{"defi"}},
	{AssetID: "8KEtor9aSsSj38MknyAE7k1uRThHY9prAXgiE4D7WpyL", Name: "VVUSDNLP", Categories: []string{"defi"}},
	{AssetID: "6nSpVyNH7yM69eg446wrQR94ipbbcmZMU1ENPwanC97g", Name: "NSBT", Categories: []string{"defi"}},
	{AssetID: "8wUmN9Y15f3JR4KZfE81XLXpkdgwnqoBNG6NmocZpKQx", Name: "Staked NSBT", Categories: []string{"defi"}},
	{AssetID: "4CDoUKSAtLTwVTpdxFu6EcbafiCDZUSBXrWGjrAcCPoL", Name: "sNSBT_TCI", Categories: []string{"defi"}},
	{AssetID: "6jsmMsMfpJWqxSGyxrkTvH5zZyaQd2P6VEY9fBz2T8F", Name: "SPICE"},
	{AssetID: "5eNgKTbzCXz3GQmhF3YJafYw77QGLXQWa26uZcVRi3uA", Name: "PZ 0777", Categories: []string{"pz"}},
	{AssetID: "6dFUm2PVMYf2N2oRV1PUwuaDmdTSnj7HS5Eb9rFcKmRR", Name: "PL-PUZZLE"},
	{AssetID: "2fdzyHvXGCqaz1XA8m9fodemmP9giVBcpe4Jq9F63oFL", Name: "BAI."},
	{AssetID: "HTaRkjbyQ33UmpPVm839o8psfaHg9R4cStGWH8hCtYqv", Name: "Rome Keeper", Categories: []string{"defi"}},
	{AssetID: "BzAhuKAem8g3L65hHpQ5thAhDG4fW9MHqCWAt6Zt7ZAV", Name: "PZ MEGAMEME", Categories: []string{"meme"}},
}
