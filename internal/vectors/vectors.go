// Package vectors holds published known-answer tests for the native
// algorithms. Inputs are the reference suites from RFC 1320, RFC 1321,
// FIPS 180-4 and the RIPEMD authors.
package vectors

// Vector is one known answer. The message is Input repeated Repeat times.
type Vector struct {
	Algorithm string
	Input     string
	Repeat    uint64
	Digest    string
}

// Len returns the message length in bytes.
func (v Vector) Len() uint64 { return v.Repeat * uint64(len(v.Input)) }

// Long reports whether the message is large enough to be skipped in short
// test runs.
func (v Vector) Long() bool { return v.Len() > 1<<24 }

// Published lists every known answer, grouped by algorithm.
var Published = []Vector{
	{"md4", "", 1, "31d6cfe0d16ae931b73c59d7e0c089c0"},
	{"md4", "a", 1, "bde52cb31de33e46245e05fbdbd6fb24"},
	{"md4", "abc", 1, "a448017aaf21d8525fc10ae87aa6729d"},
	{"md4", "message digest", 1, "d9130a8164549fe818874806e1c7014b"},
	{"md4", "abcdefghijklmnopqrstuvwxyz", 1, "d79e1c308aa5bbcdeea8ed63df412da9"},
	{"md4", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "4691a9ec81b1a6bd1ab8557240b245c5"},
	{"md4", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 1, "043f8582f241db351ce627e153e7f0e4"},
	{"md4", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", 1, "e33b4ddc9c38f2199c3e7b164fcc0536"},
	{"md4", "a", 1000000, "bbce80cc6bb65e5c6745e30d4eeca9a4"},

	{"md5", "", 1, "d41d8cd98f00b204e9800998ecf8427e"},
	{"md5", "a", 1, "0cc175b9c0f1b6a831c399e269772661"},
	{"md5", "abc", 1, "900150983cd24fb0d6963f7d28e17f72"},
	{"md5", "message digest", 1, "f96b697d7cb7938d525a2f31aaf161d0"},
	{"md5", "abcdefghijklmnopqrstuvwxyz", 1, "c3fcd3d76192e4007dfb496cca67e13b"},
	{"md5", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "8215ef0796a20bcaaae116d3876c664a"},
	{"md5", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 1, "d174ab98d277d9f5a5611c2c9f419d9f"},
	{"md5", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", 1, "57edf4a22be3c955ac49da2e2107b67a"},
	{"md5", "a", 1000000, "7707d6ae4e027c70eea2a935c2296f21"},

	{"sha1", "", 1, "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
	{"sha1", "abc", 1, "a9993e364706816aba3e25717850c26c9cd0d89d"},
	{"sha1", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
	{"sha1", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "a49b2446a02c645bf419f995b67091253a04a259"},
	{"sha1", "a", 1000000, "34aa973cd4c4daa4f61eeb2bdbad27316534016f"},
	{"sha1", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "7789f0c9ef7bfc40d93311143dfbe69e2017f592"},

	{"sha224", "", 1, "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
	{"sha224", "abc", 1, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
	{"sha224", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525"},
	{"sha224", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "c97ca9a559850ce97a04a96def6d99a9e0e0e2ab14e6b8df265fc0b3"},
	{"sha224", "a", 1000000, "20794655980c91d8bbb4c1ea97618a4bf03f42581948b2ee4ee7ad67"},
	{"sha224", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "b5989713ca4fe47a009f8621980b34e6d63ed3063b2a0a2c867d8a85"},

	{"sha512-224", "", 1, "6ed0dd02806fa89e25de060c19d3ac86cabb87d6a0ddd05c333b84f4"},
	{"sha512-224", "abc", 1, "4634270f707b6a54daae7530460842e20e37ed265ceee9a43e8924aa"},
	{"sha512-224", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "e5302d6d54bb242275d1e7622d68df6eb02dedd13f564c13dbda2174"},
	{"sha512-224", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "23fec5bb94d60b23308192640b0c453335d664734fe40e7268674af9"},
	{"sha512-224", "a", 1000000, "37ab331d76f0d36de422bd0edeb22a28accd487b7a8453ae965dd287"},
	{"sha512-224", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "9a7f86727c3be1403d6702617646b15589b8c5a92c70f1703cd25b52"},

	{"sha256", "", 1, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
	{"sha256", "abc", 1, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	{"sha256", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "248d6a61d20638b8e5c026930c3e6039a33ce45964ff2167f6ecedd419db06c1"},
	{"sha256", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "cf5b16a778af8380036ce59e7b0492370b249b11e8f07a51afac45037afee9d1"},
	{"sha256", "a", 1000000, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0"},
	{"sha256", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "50e72a0e26442fe2552dc3938ac58658228c0cbfb1d2ca872ae435266fcd055e"},

	{"sha512-256", "", 1, "c672b8d1ef56ed28ab87c3622c5114069bdd3ad7b8f9737498d0c01ecef0967a"},
	{"sha512-256", "abc", 1, "53048e2681941ef99b2e29b76b4c7dabe4c2d0c634fc6d46e0e2f13107e7af23"},
	{"sha512-256", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "bde8e1f9f19bb9fd3406c90ec6bc47bd36d8ada9f11880dbc8a22a7078b6a461"},
	{"sha512-256", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "3928e184fb8690f840da3988121d31be65cb9d3ef83ee6146feac861e19b563a"},
	{"sha512-256", "a", 1000000, "9a59a052930187a97038cae692f30708aa6491923ef5194394dc68d56c74fb21"},
	{"sha512-256", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "b5855a6179802ce567cbf43888284c6ac7c3f6c48b08c5bc1e8ad75d12782c9e"},

	{"sha384", "", 1, "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b"},
	{"sha384", "abc", 1, "cb00753f45a35e8bb5a03d699ac65007272c32ab0eded1631a8b605a43ff5bed8086072ba1e7cc2358baeca134c825a7"},
	{"sha384", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "3391fdddfc8dc7393707a65b1b4709397cf8b1d162af05abfe8f450de5f36bc6b0455a8520bc4e6f5fe95b1fe3c8452b"},
	{"sha384", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "09330c33f71147e83d192fc782cd1b4753111b173b3b05d22fa08086e3b0f712fcc7c71a557e2db966c3e9fa91746039"},
	{"sha384", "a", 1000000, "9d0e1809716474cb086e834e310a4a1ced149e9c00f248527972cec5704c2a5b07b8b3dc38ecc4ebae97ddd87f3d8985"},
	{"sha384", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "5441235cc0235341ed806a64fb354742b5e5c02a3c5cb71b5f63fb793458d8fdae599c8cd8884943c04f11b31b89f023"},

	{"sha512", "", 1, "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
	{"sha512", "abc", 1, "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	{"sha512", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "204a8fc6dda82f0a0ced7beb8e08a41657c16ef468b228a8279be331a703c33596fd15c13b1b07f9aa1d3bea57789ca031ad85c7a71dd70354ec631238ca3445"},
	{"sha512", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmnoijklmnopjklmnopqklmnopqrlmnopqrsmnopqrstnopqrstu", 1, "8e959b75dae313da8cf4f72814fc143f8f7779c6eb9f7fa17299aeadb6889018501d289e4900f7e4331b99dec4b5433ac7d329eeb6dd26545e96e55b874be909"},
	{"sha512", "a", 1000000, "e718483d0ce769644e2e42c7bc15b4638e1f98b13b2044285632a803afa973ebde0ff244877ea60a4cb0432ce577c31beb009c5c2c49aa2e4eadb217ad8cc09b"},
	{"sha512", "abcdefghbcdefghicdefghijdefghijkefghijklfghijklmghijklmnhijklmno", 16777216, "b47c933421ea2db149ad6e10fce6c7f93d0752380180ffd7f4629a712134831d77be6091b819ed352c2967a2e2d4fa5050723c9630691f1a05a7281dbe6c1086"},

	{"ripemd128", "", 1, "cdf26213a150dc3ecb610f18f6b38b46"},
	{"ripemd128", "a", 1, "86be7afa339d0fc7cfc785e72f578d33"},
	{"ripemd128", "abc", 1, "c14a12199c66e4ba84636b0f69144c77"},
	{"ripemd128", "message digest", 1, "9e327b3d6e523062afc1132d7df9d1b8"},
	{"ripemd128", "abcdefghijklmnopqrstuvwxyz", 1, "fd2aa607f71dc8f510714922b371834e"},
	{"ripemd128", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "a1aa0689d0fafa2ddc22e88b49133a06"},
	{"ripemd128", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 1, "d1e959eb179c911faea4624c60c5c702"},
	{"ripemd128", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", 1, "3f45ef194732c2dbb2c4a2c769795fa3"},
	{"ripemd128", "a", 1000000, "4a7f5723f954eba1216c9d8f6320431f"},

	{"ripemd160", "", 1, "9c1185a5c5e9fc54612808977ee8f548b2258d31"},
	{"ripemd160", "a", 1, "0bdc9d2d256b3ee9daae347be6f4dc835a467ffe"},
	{"ripemd160", "abc", 1, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
	{"ripemd160", "message digest", 1, "5d0689ef49d2fae572b881b123a85ffa21595f36"},
	{"ripemd160", "abcdefghijklmnopqrstuvwxyz", 1, "f71c27109c692c1b56bbdceb5b9d2865b3708dbc"},
	{"ripemd160", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "12a053384a9c0c88e405a06c27dcf49ada62eb2b"},
	{"ripemd160", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 1, "b0e20b6e3116640286ed3a87a5713079b21f5189"},
	{"ripemd160", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", 1, "9b752e45573d4b39f4dbd3323cab82bf63326bfb"},
	{"ripemd160", "a", 1000000, "52783243c1697bdbe16d37f97f68f08325dc1528"},

	{"ripemd256", "", 1, "02ba4c4e5f8ecd1877fc52d64d30e37a2d9774fb1e5d026380ae0168e3c5522d"},
	{"ripemd256", "a", 1, "f9333e45d857f5d90a91bab70a1eba0cfb1be4b0783c9acfcd883a9134692925"},
	{"ripemd256", "abc", 1, "afbd6e228b9d8cbbcef5ca2d03e6dba10ac0bc7dcbe4680e1e42d2e975459b65"},
	{"ripemd256", "message digest", 1, "87e971759a1ce47a514d5c914c392c9018c7c46bc14465554afcdf54a5070c0e"},
	{"ripemd256", "abcdefghijklmnopqrstuvwxyz", 1, "649d3034751ea216776bf9a18acc81bc7896118a5197968782dd1fd97d8d5133"},
	{"ripemd256", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "3843045583aac6c8c8d9128573e7a9809afb2a0f34ccc36ea9e72f16f6368e3f"},
	{"ripemd256", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 1, "5740a408ac16b720b84424ae931cbb1fe363d1d0bf4017f1a89f7ea6de77a0b8"},
	{"ripemd256", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", 1, "06fdcc7a409548aaf91368c06a6275b553e3f099bf0ea4edfd6778df89a890dd"},
	{"ripemd256", "a", 1000000, "ac953744e10e31514c150d4d8d7b677342e33399788296e43ae4850ce4f97978"},

	{"ripemd320", "", 1, "22d65d5661536cdc75c1fdf5c6de7b41b9f27325ebc61e8557177d705a0ec880151c3a32a00899b8"},
	{"ripemd320", "a", 1, "ce78850638f92658a5a585097579926dda667a5716562cfcf6fbe77f63542f99b04705d6970dff5d"},
	{"ripemd320", "abc", 1, "de4c01b3054f8930a79d09ae738e92301e5a17085beffdc1b8d116713e74f82fa942d64cdbc4682d"},
	{"ripemd320", "message digest", 1, "3a8e28502ed45d422f68844f9dd316e7b98533fa3f2a91d29f84d425c88d6b4eff727df66a7c0197"},
	{"ripemd320", "abcdefghijklmnopqrstuvwxyz", 1, "cabdb1810b92470a2093aa6bce05952c28348cf43ff60841975166bb40ed234004b8824463e6b009"},
	{"ripemd320", "abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", 1, "d034a7950cf722021ba4b84df769a5de2060e259df4c9bb4a4268c0e935bbc7470a969c9d072a1ac"},
	{"ripemd320", "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789", 1, "ed544940c86d67f250d232c30b7b3e5770e0c60c8cb9a4cafe3b11388af9920e1b99230b843c86a4"},
	{"ripemd320", "12345678901234567890123456789012345678901234567890123456789012345678901234567890", 1, "557888af5f6d8ed62ab66945c6d2a0a47ecd5341e915eb8fea1d0524955f825dc717e4a008ab2d42"},
	{"ripemd320", "a", 1000000, "bdee37f4371e20646b8b0d862dda16292ae36f40965e8c8509e63d1dbddecc503e2b63eb9245bb66"},
}

// For returns the published vectors of one algorithm.
func For(algorithm string) []Vector {
	var vs []Vector
	for _, v := range Published {
		if v.Algorithm == algorithm {
			vs = append(vs, v)
		}
	}
	return vs
}
