package deploys

import "github.com/Daniel-Aaron-Bloom/wormhole-sdk-rs/vaa"

var evmDeployments = []deployment{
	{chain: vaa.ChainIDEthereum, name: "Ethereum", env: EnvMainNet, core: "98f3c9e6E3fAce36bAAd05FE09d375Ef1464288B", tokenBridge: "3ee18B2214AFF97000D974cf647E7C347E8fa585", nftBridge: "6FFd7EdE62328b3Af38FCD61461Bbfc52F5651fE"},
	{chain: vaa.ChainIDBSC, name: "Bsc", env: EnvMainNet, core: "98f3c9e6E3fAce36bAAd05FE09d375Ef1464288B", tokenBridge: "B6F6D86a8f9879A9c87f643768d9efc38c1Da6E7", nftBridge: "5a58505a96D1dbf8dF91cB21B54419FC36e93fdE"},
	{chain: vaa.ChainIDPolygon, name: "Polygon", env: EnvMainNet, core: "7A4B5a56256163F07b2C80A7cA55aBE66c4ec4d7", tokenBridge: "5a58505a96D1dbf8dF91cB21B54419FC36e93fdE", nftBridge: "90BBd86a6Fe93D3bc3ed6335935447E75fAb7fCf"},
	{chain: vaa.ChainIDAvalanche, name: "Avalanche", env: EnvMainNet, core: "54a8e5f9c4CbA08F9943965859F6c34eAF03E26c", tokenBridge: "0e082F06FF657D94310cB8cE8B0D9a04541d8052", nftBridge: "f7B6737Ca9c4e08aE573F75A97B73D7a813f5De5"},
	{chain: vaa.ChainIDOasis, name: "Oasis", env: EnvMainNet, core: "fE8cD454b4A1CA468B57D79c0cc77Ef5B6f64585", tokenBridge: "5848C791e09901b40A9Ef749f2a6735b418d7564", nftBridge: "04952D522Ff217f40B5Ef3cbF659EcA7b952a6c1"},
	{chain: vaa.ChainIDAurora, name: "Aurora", env: EnvMainNet, core: "a321448d90d4e5b0A732867c18eA198e75CAC48E", tokenBridge: "51b5123a7b0F9b2bA265f9c4C8de7D78D52f510F", nftBridge: "6dcC0484472523ed9Cdc017F711Bcbf909789284"},
	{chain: vaa.ChainIDFantom, name: "Fantom", env: EnvMainNet, core: "126783A6Cb203a3E35344528B26ca3a0489a1485", tokenBridge: "7C9Fc5741288cDFdD83CeB07f3ea7e22618D79D2", nftBridge: "A9c7119aBDa80d4a4E0C06C8F4d8cF5893234535"},
	{chain: vaa.ChainIDKarura, name: "Karura", env: EnvMainNet, core: "a321448d90d4e5b0A732867c18eA198e75CAC48E", tokenBridge: "ae9d7fe007b3327AA64A32824Aaac52C42a6E624", nftBridge: "b91e3638F82A1fACb28690b37e3aAE45d2c33808"},
	{chain: vaa.ChainIDAcala, name: "Acala", env: EnvMainNet, core: "a321448d90d4e5b0A732867c18eA198e75CAC48E", tokenBridge: "ae9d7fe007b3327AA64A32824Aaac52C42a6E624", nftBridge: "b91e3638F82A1fACb28690b37e3aAE45d2c33808"},
	{chain: vaa.ChainIDKlaytn, name: "Klaytn", env: EnvMainNet, core: "0C21603c4f3a6387e241c0091A7EA39E43E90bb7", tokenBridge: "5b08ac39EAED75c0439FC750d9FE7E1F9dD0193F", nftBridge: "3c3c561757BAa0b78c5C025CdEAa4ee24C1dFfEf"},
	{chain: vaa.ChainIDCelo, name: "Celo", env: EnvMainNet, core: "a321448d90d4e5b0A732867c18eA198e75CAC48E", tokenBridge: "796Dff6D74F3E27060B71255Fe517BFb23C93eed", nftBridge: "A6A377d75ca5c9052c9a77ED1e865Cc25Bd97bf3"},
	{chain: vaa.ChainIDMoonbeam, name: "Moonbeam", env: EnvMainNet, core: "C8e2b0cD52Cf01b0Ce87d389Daa3d414d4cE29f3", tokenBridge: "b1731c586ca89a23809861c6103f0b96b3f57d92", nftBridge: "453cfbe096c0f8d763e8c5f24b441097d577bde2"},
	{chain: vaa.ChainIDArbitrum, name: "Arbitrum", env: EnvMainNet, core: "a5f208e072434bC67592E4C49C1B991BA79BCA46", tokenBridge: "0b2402144Bb366A632D14B83F244D2e0e21bD39c", nftBridge: "3dD14D553cFD986EAC8e3bddF629d82073e188c8"},
	{chain: vaa.ChainIDOptimism, name: "Optimism", env: EnvMainNet, core: "Ee91C335eab126dF5fDB3797EA9d6aD93aeC9722", tokenBridge: "1D68124e65faFC907325e3EDbF8c4d84499DAa8b", nftBridge: "fE8cD454b4A1CA468B57D79c0cc77Ef5B6f64585"},
	{chain: vaa.ChainIDGnosis, name: "Gnosis", env: EnvMainNet, core: "a321448d90d4e5b0A732867c18eA198e75CAC48E"},
	{chain: vaa.ChainIDBase, name: "Base", env: EnvMainNet, core: "bebdb6C8ddC678FfA9f8748f85C815C556Dd8ac6", tokenBridge: "8d2de8d2f73F1F4cAB472AC9A881C9b123C79627", nftBridge: "DA3adC6621B2677BEf9aD26598e6939CF0D92f88"},
	{chain: vaa.ChainIDRootstock, name: "Rootstock", env: EnvMainNet, core: "bebdb6C8ddC678FfA9f8748f85C815C556Dd8ac6"},
	{chain: vaa.ChainIDScroll, name: "Scroll", env: EnvMainNet, core: "bebdb6C8ddC678FfA9f8748f85C815C556Dd8ac6", tokenBridge: "24850c6f61C438823F01B7A3BF2B89B72174Fa9d"},
	{chain: vaa.ChainIDMantle, name: "Mantle", env: EnvMainNet, core: "bebdb6C8ddC678FfA9f8748f85C815C556Dd8ac6", tokenBridge: "24850c6f61C438823F01B7A3BF2B89B72174Fa9d"},
	{chain: vaa.ChainIDBlast, name: "Blast", env: EnvMainNet, core: "bebdb6C8ddC678FfA9f8748f85C815C556Dd8ac6", tokenBridge: "24850c6f61C438823F01B7A3BF2B89B72174Fa9d"},
	{chain: vaa.ChainIDXLayer, name: "XLayer", env: EnvMainNet, core: "194B123c5E96B9b2E49763619985790Dc241CAC0", tokenBridge: "5537857664B0f9eFe38C9f320F75fEf23234D904"},
	{chain: vaa.ChainIDSnaxchain, name: "Snaxchain", env: EnvMainNet, core: "c1BA3CC4bFE724A08FbbFbF64F8db196738665f4", tokenBridge: "8B94bfE456B48a6025b92E11Be393BAa86e68410"},
	{chain: vaa.ChainIDEthereum, name: "Goerli", env: EnvTestNet, aliases: []string{"Ethereum"}, core: "706abc4E45D419950511e474C7B9Ed348A4a716c", tokenBridge: "F890982f9310df57d00f659cf4fd87e65adEd8d7", nftBridge: "D8E4C2DbDd2e2bd8F1336EA691dBFF6952B1a6eB"},
	{chain: vaa.ChainIDBSC, name: "BscTestnet", env: EnvTestNet, aliases: []string{"Bsc"}, core: "68605AD7b15c732a30b1BbC62BE8F2A509D74b4D", tokenBridge: "9dcF9D205C9De35334D646BeE44b2D2859712A09", nftBridge: "cD16E5613EF35599dc82B24Cb45B5A93D779f1EE"},
	{chain: vaa.ChainIDPolygon, name: "PolygonTestnet", env: EnvTestNet, aliases: []string{"Polygon"}, core: "0CBE91CF822c73C2315FB05100C2F714765d5c20", tokenBridge: "377D55a7928c046E18eEbb61977e714d2a76472a", nftBridge: "51a02d0dcb5e52F5b92bdAA38FA013C91c7309A9"},
	{chain: vaa.ChainIDAvalanche, name: "Fuji", env: EnvTestNet, aliases: []string{"Avalanche"}, core: "7bbcE28e64B3F8b84d876Ab298393c38ad7aac4C", tokenBridge: "61E44E506Ca5659E6c0bba9b678586fA2d729756", nftBridge: "D601BAf2EEE3C028344471684F6b27E789D9075D"},
	{chain: vaa.ChainIDOasis, name: "OasisTestnet", env: EnvTestNet, aliases: []string{"Oasis"}, core: "c1C338397ffA53a2Eb12A7038b4eeb34791F8aCb", tokenBridge: "88d8004A9BdbfD9D28090A02010C19897a29605c", nftBridge: "C5c25B41AB0b797571620F5204Afa116A44c0ebA"},
	{chain: vaa.ChainIDAurora, name: "AuroraTestnet", env: EnvTestNet, aliases: []string{"Aurora"}, core: "Bd07292de7b505a4E803CEe286184f7Acf908F5e", tokenBridge: "D05eD3ad637b890D68a854d607eEAF11aF456fba", nftBridge: "8F399607E9BA2405D87F5f3e1B78D950b44b2e24"},
	{chain: vaa.ChainIDFantom, name: "FantomTestnet", env: EnvTestNet, aliases: []string{"Fantom"}, core: "1BB3B4119b7BA9dfad76B0545fb3F531383c3bB7", tokenBridge: "599CEa2204B4FaECd584Ab1F2b6aCA137a0afbE8", nftBridge: "63eD9318628D26BdCB15df58B53BB27231D1B227"},
	{chain: vaa.ChainIDKarura, name: "KaruraTestnet", env: EnvTestNet, aliases: []string{"Karura"}, core: "64fb09E405D2043ed7785a29E296C766D56F2056", tokenBridge: "e157115ef34c93145Fec2FE53706846853B07F42"},
	{chain: vaa.ChainIDAcala, name: "Mandala", env: EnvTestNet, aliases: []string{"Acala"}, core: "64fb09E405D2043ed7785a29E296C766D56F2056", tokenBridge: "e157115ef34c93145Fec2FE53706846853B07F42"},
	{chain: vaa.ChainIDKlaytn, name: "Baobab", env: EnvTestNet, aliases: []string{"Klaytn"}, core: "1830CC6eE66c84D2F177B94D544967c774E624cA", tokenBridge: "C7A13BE098720840dEa132D860fDfa030884b09A", nftBridge: "94c994fC51c13101062958b567e743f1a04432dE"},
	{chain: vaa.ChainIDCelo, name: "Alfajores", env: EnvTestNet, aliases: []string{"Celo"}, core: "88505117CA88e7dd2eC6EA1E13f0948db2D50D56", tokenBridge: "05ca6037eC51F8b712eD2E6Fa72219FEaE74E153", nftBridge: "aCD8190F647a31E56A656748bC30F69259f245Db"},
	{chain: vaa.ChainIDMoonbeam, name: "MoonbaseAlpha", env: EnvTestNet, aliases: []string{"Moonbeam"}, core: "a5B7D85a8f27dd7907dc8FdC21FA5657D5E2F901", tokenBridge: "bc976D4b9D57E57c3cA52e1Fd136C45FF7955A96", nftBridge: "98A0F4B96972b32Fcb3BD03cAeB66A44a6aB9Edb"},
	{chain: vaa.ChainIDArbitrum, name: "ArbitrumGoerli", env: EnvTestNet, aliases: []string{"Arbitrum"}, core: "C7A204bDBFe983FCD8d8E61D02b475D4073fF97e", tokenBridge: "23908A62110e21C04F3A4e011d24F901F911744A", nftBridge: "Ee3dB83916Ccdc3593b734F7F2d16D630F39F1D0"},
	{chain: vaa.ChainIDOptimism, name: "OPGoerli", env: EnvTestNet, aliases: []string{"Optimism"}, core: "6b9C8671cdDC8dEab9c719bB87cBd3e782bA6a35", tokenBridge: "C7A204bDBFe983FCD8d8E61D02b475D4073fF97e", nftBridge: "23908A62110e21C04F3A4e011d24F901F911744A"},
	{chain: vaa.ChainIDGnosis, name: "Chiado", env: EnvTestNet, aliases: []string{"Gnosis"}, core: "BB73cB66C26740F31d1FabDC6b7A46a038A300dd"},
	{chain: vaa.ChainIDBase, name: "BaseGoerli", env: EnvTestNet, aliases: []string{"Base"}, core: "23908A62110e21C04F3A4e011d24F901F911744A", tokenBridge: "A31aa3FDb7aF7Db93d18DDA4e19F811342EDF780", nftBridge: "F681d1cc5F25a3694E348e7975d7564Aa581db59"},
	{chain: vaa.ChainIDRootstock, name: "RootstockTestnet", env: EnvTestNet, aliases: []string{"Rootstock"}, core: "bebdb6C8ddC678FfA9f8748f85C815C556Dd8ac6"},
	{chain: vaa.ChainIDScroll, name: "ScrollSepolia", env: EnvTestNet, aliases: []string{"Scroll"}, core: "055F47F1250012C6B20c436570a76e52c17Af2D5", tokenBridge: "22427d90B7dA3fA4642F7025A854c7254E4e45BF"},
	{chain: vaa.ChainIDMantle, name: "MantleTestnet", env: EnvTestNet, aliases: []string{"Mantle"}, core: "376428e7f26D5867e69201b275553C45B09EE090", tokenBridge: "75Bfa155a9D7A3714b0861c8a8aF0C4633c45b5D"},
	{chain: vaa.ChainIDBlast, name: "BlastSepolia", env: EnvTestNet, aliases: []string{"Blast"}, core: "473e002D7add6fB67a4964F13bFd61280Ca46886", tokenBridge: "430855B4D43b8AEB9D2B9869B74d58dda79C0dB2"},
	{chain: vaa.ChainIDXLayer, name: "XLayerTestnet", env: EnvTestNet, aliases: []string{"XLayer"}, core: "A31aa3FDb7aF7Db93d18DDA4e19F811342EDF780", tokenBridge: "dA91a06299BBF302091B053c6B9EF86Eff0f930D"},
	{chain: vaa.ChainIDLinea, name: "LineaSepolia", env: EnvTestNet, aliases: []string{"Linea"}, core: "79A1027a6A159502049F10906D333EC57E95F083", tokenBridge: "C7A204bDBFe983FCD8d8E61D02b475D4073fF97e"},
	{chain: vaa.ChainIDBerachain, name: "Artio", env: EnvTestNet, aliases: []string{"Berachain", "bArtio"}, core: "BB73cB66C26740F31d1FabDC6b7A46a038A300dd", tokenBridge: "a10f2eF61dE1f19f586ab8B6F2EbA89bACE63F7a"},
	{chain: vaa.ChainIDSeiEVM, name: "atlantic-2-evm", env: EnvTestNet, aliases: []string{"seievm"}, core: "07782FCe991dAb4DE7a3124032E534A0D059B4d8"},
	{chain: vaa.ChainIDSnaxchain, name: "SnaxchainTestnet", env: EnvTestNet, aliases: []string{"Snaxchain"}, core: "BB73cB66C26740F31d1FabDC6b7A46a038A300dd", tokenBridge: "a10f2eF61dE1f19f586ab8B6F2EbA89bACE63F7a"},
	{chain: vaa.ChainIDSepolia, name: "Sepolia", env: EnvTestNet, core: "4a8bc80Ed5a4067f1CCf107057b8270E0cC11A78", tokenBridge: "DB5492265f6038831E89f495670FF909aDe94bd9", nftBridge: "6a0B52ac198e4870e5F3797d5B403838a5bbFD99"},
	{chain: vaa.ChainIDArbitrumSepolia, name: "ArbitrumSepolia", env: EnvTestNet, core: "6b9C8671cdDC8dEab9c719bB87cBd3e782bA6a35", tokenBridge: "C7A204bDBFe983FCD8d8E61D02b475D4073fF97e", nftBridge: "23908A62110e21C04F3A4e011d24F901F911744A"},
	{chain: vaa.ChainIDBaseSepolia, name: "BaseSepolia", env: EnvTestNet, core: "79A1027a6A159502049F10906D333EC57E95F083", tokenBridge: "86F55A04690fd7815A3D802bD587e83eA888B239", nftBridge: "268557122Ffd64c85750d630b716471118F323c8"},
	{chain: vaa.ChainIDOptimismSepolia, name: "OptimismSepolia", env: EnvTestNet, core: "31377888146f3253211EFEf5c676D41ECe7D58Fe", tokenBridge: "99737Ec4B815d816c49A385943baf0380e75c0Ac", nftBridge: "27812285fbe85BA1DF242929B906B31EE3dd1b9f"},
	{chain: vaa.ChainIDHolesky, name: "Holesky", env: EnvTestNet, core: "a10f2eF61dE1f19f586ab8B6F2EbA89bACE63F7a", tokenBridge: "76d093BbaE4529a342080546cAFEec4AcbA59EC6", nftBridge: "c8941d483c45eF8FB72E4d1F9dDE089C95fF8171"},
	{chain: vaa.ChainIDPolygonSepolia, name: "PolygonSepolia", env: EnvTestNet, core: "6b9C8671cdDC8dEab9c719bB87cBd3e782bA6a35", tokenBridge: "C7A204bDBFe983FCD8d8E61D02b475D4073fF97e", nftBridge: "23908A62110e21C04F3A4e011d24F901F911744A"},
	{chain: vaa.ChainIDEthereum, name: "EthereumDevnet", env: EnvDevNet, aliases: []string{"Ethereum"}, core: "C89Ce4735882C9F0f0FE26686c53074E09B0D550", tokenBridge: "0290FB167208Af455bB137780163b7B7a9a10C16", nftBridge: "26b4afb60d6c903165150c6f0aa14f8016be4aec"},
	{chain: vaa.ChainIDBSC, name: "BscDevnet", env: EnvDevNet, aliases: []string{"Bsc"}, core: "C89Ce4735882C9F0f0FE26686c53074E09B0D550", tokenBridge: "0290FB167208Af455bB137780163b7B7a9a10C16", nftBridge: "26b4afb60d6c903165150c6f0aa14f8016be4aec"},
}

var solanaDeployments = []deployment{
	{chain: vaa.ChainIDSolana, name: "Solana", env: EnvMainNet, core: "worm2ZoG2kUd4vFXhvjh93UUH596ayRfgQ2MgjNMTth", tokenBridge: "wormDTUJ6AWPNvk59vGQbDvGJmqbDTdgWgAqcLBCgUb", nftBridge: "WnFt12ZrnzZrFZkt2xsNsaNWoQribnuQ5B5FrDbwDhD"},
	{chain: vaa.ChainIDPythNet, name: "Pythnet", env: EnvMainNet, core: "H3fxXJ86ADW2PNuDDmZJg6mzTtPxkYCpNuQUTgmJ7AjU"},
	{chain: vaa.ChainIDSolana, name: "SolanaTestnet", env: EnvTestNet, aliases: []string{"Solana"}, core: "3u8hJUVTA4jH1wYAyUur7FFZVQ8H635K3tSHHF4ssjQ5", tokenBridge: "DZnkkTmCiFWfYTfT41X3Rd1kDgozqzxWaHqsw6W4x2oe", nftBridge: "2rHhojZ7hpu1zA91nvZmT8TqWWvMcKmmNBCr2mKTtMq4"},
	{chain: vaa.ChainIDPythNet, name: "PythnetTestnet", env: EnvTestNet, aliases: []string{"Pythnet"}, core: "EUrRARh92Cdc54xrDn6qzaqjA77NRrCcfbr8kPwoTL4z"},
	{chain: vaa.ChainIDSolana, name: "SolanaDevnet", env: EnvDevNet, aliases: []string{"Solana"}, core: "Bridge1p5gheXUvJ6jGWGeCsgPKgnE3YgdGKRVCMY9o", tokenBridge: "B6RHG3mfcckmrYN1UhmJzyS1XX3fZKbkeUcpJe9Sy3FE", nftBridge: "NFTWqJR8YnRVqPDvTJrYuLrQDitTG5AScqbeghi4zSA"},
}

var cosmWasmDeployments = []deployment{
	{chain: vaa.ChainIDTerra, name: "Terra", env: EnvMainNet, core: "terra1dq03ugtd40zu9hcgdzrsq6z2z4hwhc9tqk2uy5", tokenBridge: "terra10nmmwe8r3g99a9newtqa7a75xfgs2e8z87r2sf"},
	{chain: vaa.ChainIDTerra2, name: "Terra2", env: EnvMainNet, core: "terra12mrnzvhx3rpej6843uge2yyfppfyd3u9c3uq223q8sl48huz9juqffcnhp", tokenBridge: "terra153366q50k7t8nn7gec00hg66crnhkdggpgdtaxltaq6xrutkkz3s992fw9"},
	{chain: vaa.ChainIDInjective, name: "Injective", env: EnvMainNet, core: "inj17p9rzwnnfxcjp32un9ug7yhhzgtkhvl9l2q74d", tokenBridge: "inj1ghd753shjuwexxywmgs4xz7x2q732vcnxxynfn"},
	{chain: vaa.ChainIDXpla, name: "Xpla", env: EnvMainNet, core: "xpla1jn8qmdda5m6f6fqu9qv46rt7ajhklg40ukpqchkejcvy8x7w26cqxamv3w", tokenBridge: "xpla137w0wfch2dfmz7jl2ap8pcmswasj8kg06ay4dtjzw7tzkn77ufxqfw7acv"},
	{chain: vaa.ChainIDSei, name: "Sei", env: EnvMainNet, core: "sei1gjrrme22cyha4ht2xapn3f08zzw6z3d4uxx6fyy9zd5dyr3yxgzqqncdqn", tokenBridge: "sei1smzlm9t79kur392nu9egl8p8je9j92q4gzguewj56a05kyxxra0qy0nuf3"},
	{chain: vaa.ChainIDWormchain, name: "Wormchain", env: EnvMainNet, core: "wormhole1ufs3tlq4umljk0qfe8k5ya0x6hpavn897u2cnf9k0en9jr7qarqqaqfk2j", tokenBridge: "wormhole1466nf3zuxpya8q9emxukd7vftaf6h4psr0a07srl5zw74zh84yjq4lyjmh"},
	{chain: vaa.ChainIDNeutron, name: "Neutron", env: EnvMainNet, core: "neutron16rerygcpahqcxx5t8vjla46ym8ccn7xz7rtc6ju5ujcd36cmc7zs9zrunh"},
	{chain: vaa.ChainIDTerra, name: "Bombay", env: EnvTestNet, aliases: []string{"Terra"}, core: "terra1pd65m0q9tl3v8znnz5f5ltsfegyzah7g42cx5v", tokenBridge: "terra1pseddrv0yfsn76u4zxrjmtf45kdlmalswdv39a"},
	{chain: vaa.ChainIDTerra2, name: "Pisco", env: EnvTestNet, aliases: []string{"Terra2"}, core: "terra1pd65m0q9tl3v8znnz5f5ltsfegyzah7g42cx5v", tokenBridge: "terra1pseddrv0yfsn76u4zxrjmtf45kdlmalswdv39a"},
	{chain: vaa.ChainIDInjective, name: "InjectiveTestnet", env: EnvTestNet, aliases: []string{"injective"}, core: "inj1xx3aupmgv3ce537c0yce8zzd3sz567syuyedpg", tokenBridge: "inj1q0e70vhrv063eah90mu97sazhywmeegp7myvnh"},
	{chain: vaa.ChainIDXpla, name: "XplaTestnet", env: EnvTestNet, aliases: []string{"Xpla"}, core: "xpla1upkjn4mthr0047kahvn0llqx4qpqfn75lnph4jpxfn8walmm8mqsanyy35", tokenBridge: "xpla1kek6zgdaxcsu35nqfsyvs2t9vs87dqkkq6hjdgczacysjn67vt8sern93x"},
	{chain: vaa.ChainIDSei, name: "atlantic-2", env: EnvTestNet, aliases: []string{"Sei"}, core: "sei1nna9mzp274djrgzhzkac2gvm3j27l402s4xzr08chq57pjsupqnqaj0d5s", tokenBridge: "sei1jv5xw094mclanxt5emammy875qelf3v62u4tl4lp5nhte3w3s9ts9w9az2"},
	{chain: vaa.ChainIDWormchain, name: "WormchainTestnet", env: EnvTestNet, aliases: []string{"Wormchain"}, core: "wormhole16jzpxp0e8550c9aht6q9svcux30vtyyyyxv5w2l2djjra46580wsazcjwp", tokenBridge: "wormhole1aaf9r6s7nxhysuegqrxv0wpm27ypyv4886medd3mrkrw6t4yfcnst3qpex"},
	{chain: vaa.ChainIDOsmosis, name: "OsmosisTestnet", env: EnvTestNet, aliases: []string{"Osmosis"}, core: "osmo1hggkxr0hpw83f8vuft7ruvmmamsxmwk2hzz6nytdkzyup9krt0dq27sgyx"},
	{chain: vaa.ChainIDNeutron, name: "Pion", env: EnvTestNet, aliases: []string{"Neutron"}, core: "neutron1enf63k37nnv9cugggpm06mg70emcnxgj9p64v2s8yx7a2yhhzk2q6xesk4"},
	{chain: vaa.ChainIDTerra, name: "TerraDevnet", env: EnvDevNet, aliases: []string{"Terra"}, core: "terra14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9ssrc8au", tokenBridge: "terra1nc5tatafv6eyq7llkr2gv50ff9e22mnf70qgjlv737ktmt4eswrquka9l6"},
	{chain: vaa.ChainIDTerra2, name: "Terra2Devnet", env: EnvDevNet, aliases: []string{"Terra2"}, core: "terra14hj2tavq8fpesdwxxcu44rty3hh90vhujrvcmstl4zr3txmfvw9ssrc8au", tokenBridge: "terra1nc5tatafv6eyq7llkr2gv50ff9e22mnf70qgjlv737ktmt4eswrquka9l6"},
	{chain: vaa.ChainIDWormchain, name: "WormchainDevnet", env: EnvDevNet, aliases: []string{"Wormchain"}, core: "wormhole1ghd753shjuwexxywmgs4xz7x2q732vcnkm6h2pyv9s6ah3hylvrqtm7t3h", tokenBridge: "wormhole1eyfccmjm6732k7wp4p6gdjwhxjwsvje44j0hfx8nkgrm8fs7vqfssvpdkx"},
}
